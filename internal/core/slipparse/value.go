package slipparse

import (
	"regexp"
	"strconv"
	"strings"
)

// The value side of '=' accepts exactly four currency prefixes: empty, R,
// Rs, and Rs. (dot count insignificant). Handwritten slips also pad the
// marker with commas and spaces ("=RS,, 400"), so those are skipped too.
var reValue = regexp.MustCompile(`(?i)^(?:rs?[.,\s]*)?(\d+)$`)

// parseValue extracts the integer after '=', stripping any currency marker.
// Shape failures are structural; a non-positive value is a validation
// failure.
func parseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	// tolerate a doubled '=' from handwritten slips
	s = strings.TrimSpace(strings.TrimPrefix(s, "="))
	m := reValue.FindStringSubmatch(s)
	if m == nil {
		return 0, structuralf("no numeric value after '=' in %q", s)
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, structuralf("value %q too large", m[1])
	}
	if v <= 0 {
		return 0, validationf("value must be positive, got %d", v)
	}
	return v, nil
}

// splitEq cuts a line at its first '='. The right side keeps any doubled
// '=' for parseValue to strip.
func splitEq(line string) (left, right string, ok bool) {
	left, right, ok = strings.Cut(line, "=")
	return strings.TrimSpace(left), strings.TrimSpace(right), ok
}

// numeralTokens splits a pana list on the five delimiters and parses each
// token. Tokens longer than three digits fail structurally.
func numeralTokens(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune("/+ ,*", r)
	})
	if len(fields) == 0 {
		return nil, nil
	}
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		if !allDigits(f) {
			return nil, structuralf("non-numeric token %q in number list", f)
		}
		if len(f) > 3 {
			return nil, structuralf("number %q longer than three digits", f)
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, structuralf("bad number %q", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// numeralOnly reports whether s contains nothing but digits and the five
// pana delimiters, with at least one digit.
func numeralOnly(s string) bool {
	digit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("/+ ,*", r):
		default:
			return false
		}
	}
	return digit
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
