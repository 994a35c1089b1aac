package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"moogship/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"HS Code",
	"Chapter",
	"Description",
	"General Rate",
	"Percentage",
	"Unit",
	"Source",
	"Confidence",
}

// Writer wraps csv.Writer for exporting resolved duty-rate entries as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEntries converts a batch of resolved entries to CSV rows and writes them.
func (w *Writer) WriteEntries(entries []domain.HTSEntry) error {
	for i := range entries {
		if err := w.csv.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.HTSEntry) []string {
	return []string{
		e.HSCode,
		strconv.Itoa(e.Chapter),
		e.Description,
		e.GeneralRate,
		strconv.FormatFloat(e.Percentage, 'f', 4, 64),
		e.Unit,
		string(e.Source),
		string(e.Confidence),
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an export name for use in a filename. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized, dated export filename.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}

// ResolvePath returns path unchanged when it already names a .csv file.
// Anything else is treated as an export name and turned into a sanitized,
// dated filename via BuildFilename.
func ResolvePath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return path
	}
	return BuildFilename(path)
}
