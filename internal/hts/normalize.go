package hts

import "strings"

// Normalize canonicalizes an HS code spelling into dotted form.
// 8-digit codes become XXXX.XX.XX and 10-digit codes XXXX.XX.XX.XX. Inputs
// with any other digit count are stripped of whitespace and leading zeros;
// when stripping leaves exactly 8 or 10 digits the result is reformatted the
// same way, so repeated calls reach a fixed point on the first one.
func Normalize(raw string) string {
	if s := dotted(digitsOnly(raw)); s != "" {
		return s
	}
	stripped := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "0"))
	if s := dotted(digitsOnly(stripped)); s != "" {
		return s
	}
	return stripped
}

// dotted groups an 8 or 10 digit string into canonical dotted form, or
// returns "" for any other length.
func dotted(digits string) string {
	switch len(digits) {
	case 8:
		return digits[:4] + "." + digits[4:6] + "." + digits[6:8]
	case 10:
		return digits[:4] + "." + digits[4:6] + "." + digits[6:8] + "." + digits[8:10]
	}
	return ""
}

// IsPlausible reports whether the code looks structurally like an HS code:
// 6 to 10 digits once separators are removed. This is a sanity screen, not a
// check against the published schedule. Letters are stripped before the
// length check, so some malformed inputs pass. A known looseness.
func IsPlausible(code string) bool {
	n := len(digitsOnly(code))
	return n >= 6 && n <= 10
}

// SearchVariants returns the spellings of code worth searching for in
// loosely formatted document text, most canonical first: dotted, undotted,
// and space-separated. An implausible code yields no variants.
func SearchVariants(code string) []string {
	if !IsPlausible(code) {
		return nil
	}
	digits := digitsOnly(code)

	variants := make([]string, 0, 3)
	seen := make(map[string]bool, 3)
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	add(Normalize(code))
	add(digits)
	if len(digits) >= 8 {
		add(digits[:4] + " " + digits[4:6] + " " + digits[6:])
	} else {
		add(digits[:4] + " " + digits[4:])
	}
	return variants
}

// Chapter returns the 2-digit chapter prefix of code, or 0 if the code has
// fewer than two digits.
func Chapter(code string) int {
	digits := digitsOnly(code)
	if len(digits) < 2 {
		return 0
	}
	return int(digits[0]-'0')*10 + int(digits[1]-'0')
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
