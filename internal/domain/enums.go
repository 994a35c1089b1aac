package domain

// RateSource identifies which resolution stage produced an entry.
type RateSource string

const (
	// RateSourcePrimaryTable is the first hand-curated rate table.
	RateSourcePrimaryTable RateSource = "primary_table"
	// RateSourceSecondaryTable is the second, independently curated table.
	RateSourceSecondaryTable RateSource = "secondary_table"
	// RateSourceDocument means the rate was scraped from the reference
	// tariff-schedule document text.
	RateSourceDocument RateSource = "document_text"
	// RateSourceNotFound tags chapter-level estimates. The name signals to
	// callers that no sourced data existed, even though a value is returned.
	RateSourceNotFound RateSource = "not_found"
)

// RateConfidence grades how much a caller should trust an entry.
type RateConfidence string

const (
	ConfidenceHigh   RateConfidence = "high"
	ConfidenceMedium RateConfidence = "medium"
	ConfidenceLow    RateConfidence = "low"
)
