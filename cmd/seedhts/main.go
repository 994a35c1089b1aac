// Command seedhts converts the curated tariff-rates Excel workbook into the
// generated secondary rate table source file.
// Usage: go run ./cmd/seedhts
// Output: internal/hts/data_secondary.go
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type rateRow struct {
	code    string
	desc    string
	rate    string
	pct     float64
	unit    string
	chapter int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "HTS Curated Rates - Pass 2.xlsx"
	outPath := "internal/hts/data_secondary.go"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := parseRatesSheet(f)
	if err != nil {
		return fmt.Errorf("parse rates sheet: %w", err)
	}
	log.Printf("rates sheet: %d entries", len(rows))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeTableSource(out, rows); err != nil {
		return fmt.Errorf("write table source: %w", err)
	}

	log.Printf("Generated %d entries in %s", len(rows), outPath)
	return nil
}

// parseRatesSheet reads the first sheet of the curated workbook.
// Columns: A(0)=HS code (dotted), B(1)=description, C(2)=general rate,
// D(3)=statistical unit. Data starts at row index 1 (header row skipped).
func parseRatesSheet(f *excelize.File) ([]rateRow, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []rateRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		code := strings.TrimSpace(cellVal(row, 0))
		rate := strings.TrimSpace(cellVal(row, 2))
		if code == "" || rate == "" || seen[code] {
			continue
		}
		chapter, ok := chapterOf(code)
		if !ok {
			continue
		}
		seen[code] = true
		entries = append(entries, rateRow{
			code:    code,
			desc:    strings.TrimSpace(cellVal(row, 1)),
			rate:    rate,
			pct:     approximateRate(rate),
			unit:    strings.TrimSpace(cellVal(row, 3)),
			chapter: chapter,
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].chapter != entries[b].chapter {
			return entries[a].chapter < entries[b].chapter
		}
		return entries[a].code < entries[b].code
	})
	return entries, nil
}

// numberPattern picks numeric amounts out of a printed rate string.
var numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[¢%]|\$(\d+(?:\.\d+)?)`)

// approximateRate converts a printed general-rate string into a numeric
// fraction. "Free" is 0; percentages convert exactly; per-unit cents and
// dollar amounts use the curated N/100 placeholder convention, so the
// fraction is advisory for those.
func approximateRate(rate string) float64 {
	if strings.EqualFold(strings.TrimSpace(rate), "free") {
		return 0
	}
	total := 0.0
	for _, m := range numberPattern.FindAllStringSubmatch(rate, -1) {
		s := m[1]
		if s == "" {
			s = m[2]
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			total += v / 100
		}
	}
	return total
}

func writeTableSource(out *os.File, rows []rateRow) error {
	var b strings.Builder
	b.WriteString("// Code generated by cmd/seedhts from the curated rates workbook. DO NOT EDIT.\n\n")
	b.WriteString("package hts\n\n")
	b.WriteString("var secondaryRows = []rateRow{\n")

	lastChapter := -1
	for i := range rows {
		r := &rows[i]
		if r.chapter != lastChapter {
			if lastChapter != -1 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\t// Chapter %d\n", r.chapter)
			lastChapter = r.chapter
		}
		fmt.Fprintf(&b, "\t{%q, %q, %q, %s, %q},\n",
			r.code, r.desc, r.rate, formatPct(r.pct), r.unit)
	}

	b.WriteString("}\n")
	_, err := out.WriteString(b.String())
	return err
}

// formatPct renders the fraction the way a hand-written literal would look.
func formatPct(pct float64) string {
	if pct == 0 {
		return "0"
	}
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

func chapterOf(code string) (int, bool) {
	if len(code) < 2 {
		return 0, false
	}
	ch, err := strconv.Atoi(code[:2])
	if err != nil || ch < 1 || ch > 99 {
		return 0, false
	}
	return ch, true
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
