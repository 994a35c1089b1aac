package domain

// HTSEntry is a resolved duty-rate record for a single HS code.
// Entries are read-only once constructed.
type HTSEntry struct {
	HSCode      string         `json:"hs_code"`
	Description string         `json:"description"`
	GeneralRate string         `json:"general_rate"`
	Percentage  float64        `json:"percentage"`
	Source      RateSource     `json:"source"`
	Confidence  RateConfidence `json:"confidence"`
	Chapter     int            `json:"chapter"`
	Unit        string         `json:"unit,omitempty"`
}

// IsAdValorem reports whether GeneralRate is a plain percentage (or "Free"),
// i.e. whether Percentage is an exact value rather than an advisory
// approximation of a per-unit rate.
func (e *HTSEntry) IsAdValorem() bool {
	if e.GeneralRate == "" {
		return false
	}
	if e.GeneralRate == "Free" {
		return true
	}
	for _, c := range e.GeneralRate {
		switch {
		case c >= '0' && c <= '9', c == '.', c == '%':
		default:
			return false
		}
	}
	return e.GeneralRate[len(e.GeneralRate)-1] == '%'
}
