package hts

import "moogship/internal/domain"

// rateRow is one curated tariff-schedule line before it is tagged with the
// table it belongs to.
type rateRow struct {
	code string
	desc string
	rate string
	pct  float64
	unit string
}

// buildEntries converts curated rows into table entries tagged with their
// source. Curated data is trusted, so confidence is high.
func buildEntries(rows []rateRow, source domain.RateSource) []domain.HTSEntry {
	entries := make([]domain.HTSEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.HTSEntry{
			HSCode:      r.code,
			Description: r.desc,
			GeneralRate: r.rate,
			Percentage:  r.pct,
			Source:      source,
			Confidence:  domain.ConfidenceHigh,
			Chapter:     Chapter(r.code),
			Unit:        r.unit,
		})
	}
	return entries
}

func newPrimaryTable() *Table {
	return NewTable("primary", buildEntries(primaryRows, domain.RateSourcePrimaryTable))
}

func newSecondaryTable() *Table {
	return NewTable("secondary", buildEntries(secondaryRows, domain.RateSourceSecondaryTable))
}
