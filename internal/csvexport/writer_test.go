package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moogship/internal/domain"
)

func TestWriter(t *testing.T) {
	entries := []domain.HTSEntry{
		{
			HSCode:      "0406.40.44",
			Description: "Blue-veined cheese, nesoi",
			GeneralRate: "12.8%",
			Percentage:  0.128,
			Unit:        "kg",
			Source:      domain.RateSourcePrimaryTable,
			Confidence:  domain.ConfidenceHigh,
			Chapter:     4,
		},
		{
			HSCode:      "8518.30.00",
			Description: "Headphones and earphones",
			GeneralRate: "Free",
			Percentage:  0,
			Unit:        "No.",
			Source:      domain.RateSourcePrimaryTable,
			Confidence:  domain.ConfidenceHigh,
			Chapter:     85,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteEntries(entries))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// --- header ---
	assert.Equal(t, columns, records[0])

	// --- rows ---
	assert.Equal(t, []string{
		"0406.40.44", "4", "Blue-veined cheese, nesoi",
		"12.8%", "0.1280", "kg", "primary_table", "high",
	}, records[1])
	assert.Equal(t, "8518.30.00", records[2][0])
	assert.Equal(t, "Free", records[2][3])
	assert.Equal(t, "0.0000", records[2][4])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"alphanumeric", "duty_rates_2026", "duty_rates_2026"},
		{"spaces_and_slashes", "chapter 61 / apparel", "chapter_61_apparel"},
		{"collapses_underscores", "a___b", "a_b"},
		{"trims_edges", "__export__", "export"},
		{"truncates", strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	got := BuildFilename("duty rates")
	date := time.Now().Format("2006-01-02")
	assert.Equal(t, "duty_rates_"+date+".csv", got)
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit_csv_path_kept", func(t *testing.T) {
		assert.Equal(t, "out/rates.csv", ResolvePath("out/rates.csv"))
		assert.Equal(t, "RATES.CSV", ResolvePath("RATES.CSV"))
	})

	t.Run("export_name_becomes_dated_filename", func(t *testing.T) {
		date := time.Now().Format("2006-01-02")
		assert.Equal(t, "duty_rates_"+date+".csv", ResolvePath("duty rates"))
	})
}
