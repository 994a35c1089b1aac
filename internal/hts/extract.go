package hts

import (
	"regexp"
	"strconv"
	"strings"

	"moogship/internal/domain"
)

// The printed tariff schedule renders each entry as: code line, descriptive
// text, a block of parenthesized special/preferential rates annotated with
// trade-partner country codes, then the column 1 general rate as a bare
// number or "Free". The general rate is positionally distinguished, not
// syntactically: it is the first unparenthesized rate line after the
// special-rates block. The scan below replicates how a human reads that
// layout.

const (
	// forwardWindow is how many lines past the code line are scanned for a
	// rate before giving up.
	forwardWindow = 15
	// verifyWindow is the ± line range searched when the initial code hit
	// does not land on a line that actually contains the code.
	verifyWindow = 5
)

type scanState int

const (
	stateDescription scanState = iota
	stateSpecialRates
)

var (
	// percentLinePattern matches a standalone general-rate percentage line.
	// The schedule occasionally prints a space before the percent sign.
	percentLinePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*%$`)
	// freeLinePattern matches a standalone "Free" general-rate line.
	freeLinePattern = regexp.MustCompile(`^(?i:free)$`)
	// codeLinePattern detects the start of a neighboring entry.
	codeLinePattern = regexp.MustCompile(`^\d{4}\.\d{2}(?:\.\d{2}){0,2}\b`)
	// countryParenPattern matches the trade-partner annotation that opens
	// the special-rates column, e.g. "(AU, BH, CL, ...)".
	countryParenPattern = regexp.MustCompile(`\([A-Z]{2},`)
	// numberPattern picks numeric amounts out of compound rate lines.
	numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[¢%]|\$(\d+(?:\.\d+)?)`)
)

// statisticalUnits are the unit-of-quantity abbreviations the schedule
// prints on their own line under an entry.
var statisticalUnits = map[string]bool{
	"kg": true, "g": true, "t": true, "No.": true, "doz.": true,
	"doz. kg": true, "prs.": true, "liters": true, "m²": true, "X": true,
}

// ExtractEntry searches the plain-text rendering of the tariff schedule for
// code and infers its general duty rate from the surrounding lines. Returns
// nil when the code is absent, when no rate appears within the forward
// window, or when the text deviates from the expected layout. Extraction is
// best-effort scraping and a miss is a modeled outcome, not a failure.
func ExtractEntry(text, code string) *domain.HTSEntry {
	variants := SearchVariants(code)
	if len(variants) == 0 || text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	idx := findCodeLine(text, variants)
	if idx < 0 {
		return nil
	}

	// A flat-text hit can land on the wrong line when the document wraps a
	// code across a line break. Only trust a line that contains one of the
	// code's own spellings; otherwise look for the true code line in a
	// small window around the hit and restart from there (the schedule
	// reprints the code column after page breaks, so a nearby unwrapped
	// occurrence usually exists).
	if !containsVariant(lines[idx], variants) {
		idx = rescan(lines, idx, variants)
		if idx < 0 {
			return nil
		}
	}

	return scanForward(lines, idx, code)
}

// findCodeLine locates the first occurrence of any search variant and
// returns the index of the line where the match starts, trying variants in
// canonical-first order. The search runs over a newline-flattened rendering
// so a code the document wrapped across lines still hits; such a hit is then
// caught by verification. Returns -1 when no variant occurs at all.
func findCodeLine(text string, variants []string) int {
	flat := strings.ReplaceAll(text, "\n", " ")
	for _, v := range variants {
		if off := strings.Index(flat, v); off >= 0 {
			return strings.Count(text[:off], "\n")
		}
	}
	return -1
}

func containsVariant(line string, variants []string) bool {
	for _, v := range variants {
		if strings.Contains(line, v) {
			return true
		}
	}
	return false
}

// rescan searches ±verifyWindow lines around idx for the line that truly
// contains the code.
func rescan(lines []string, idx int, variants []string) int {
	for j := idx - verifyWindow; j <= idx+verifyWindow; j++ {
		if j < 0 || j >= len(lines) || j == idx {
			continue
		}
		if containsVariant(lines[j], variants) {
			return j
		}
	}
	return -1
}

// scanForward walks up to forwardWindow lines past the code line through a
// two-state machine. Lines before the special-rates block are descriptive
// text; once the block starts, the next standalone rate line (one with no
// parenthetical) is the column 1 general rate.
func scanForward(lines []string, codeIdx int, code string) *domain.HTSEntry {
	state := stateDescription
	var descParts []string
	unit := ""

	limit := codeIdx + forwardWindow
	for j := codeIdx + 1; j <= limit && j < len(lines); j++ {
		line := strings.TrimSpace(lines[j])
		if line == "" {
			continue
		}

		// Another entry's code line before any rate was found: abort rather
		// than bleed the neighbor's rate into this code's result.
		if codeLinePattern.MatchString(line) {
			return nil
		}

		switch state {
		case stateDescription:
			if isSpecialRateMarker(line) {
				state = stateSpecialRates
				continue
			}
			if statisticalUnits[line] {
				unit = line
				continue
			}
			descParts = append(descParts, line)

		case stateSpecialRates:
			if strings.Contains(line, "(") {
				// Still inside the parenthesized special-rates block.
				continue
			}
			if m := percentLinePattern.FindStringSubmatch(line); m != nil {
				pct := parseRateNumber(m[1]) / 100
				return documentEntry(code, m[1]+"%", pct, descParts, unit)
			}
			if freeLinePattern.MatchString(line) {
				return documentEntry(code, "Free", 0, descParts, unit)
			}
			if strings.ContainsRune(line, '¢') || strings.ContainsRune(line, '$') {
				// Compound or per-unit rate. The numeric value is a rough
				// placeholder, not an ad-valorem conversion; the rate string
				// stays authoritative.
				return documentEntry(code, line, approximateCompound(line), descParts, unit)
			}
		}
	}
	return nil
}

// isSpecialRateMarker reports whether line opens the special-rates column:
// a free or percentage rate immediately followed by a parenthesized list of
// trade-partner country codes.
func isSpecialRateMarker(line string) bool {
	return strings.Contains(line, "Free (") ||
		strings.Contains(line, "% (") ||
		countryParenPattern.MatchString(line)
}

// approximateCompound sums every numeric amount in a compound rate line,
// treating N¢ and $N as N/100 alongside true percentages. "2¢/each" comes
// out as 0.02, matching the curated tables' placeholder convention.
func approximateCompound(line string) float64 {
	total := 0.0
	for _, m := range numberPattern.FindAllStringSubmatch(line, -1) {
		if m[1] != "" {
			total += parseRateNumber(m[1]) / 100
		} else if m[2] != "" {
			total += parseRateNumber(m[2]) / 100
		}
	}
	return total
}

func parseRateNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func documentEntry(code, rate string, pct float64, descParts []string, unit string) *domain.HTSEntry {
	return &domain.HTSEntry{
		HSCode:      Normalize(code),
		Description: strings.Join(descParts, " "),
		GeneralRate: rate,
		Percentage:  pct,
		Source:      domain.RateSourceDocument,
		Confidence:  domain.ConfidenceMedium,
		Chapter:     Chapter(code),
		Unit:        unit,
	}
}
