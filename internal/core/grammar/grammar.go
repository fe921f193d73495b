// Package grammar classifies one cleaned slip line into one of the five
// entry grammars. The grammars overlap (eg "1=100" is both a direct
// assignment and a single-column time assignment) so classification is a
// fixed priority order, most specific first, not independent matches:
//
//  1. TypeTable      1SP=100, 15CP=300
//  2. Multiply       38x700
//  3. Pana           128/129/120 = 100, bare group lines, "= 260" closers
//  4. TimeDirect     0 1 3 5 = 900, 1=100
//  5. Direct         128=100 (two and three digit left sides)
//  6. Unknown        surfaced as a line diagnostic, never dropped
//
// Specificity decreases monotonically down the list; a more general grammar
// must never swallow a line meant for a more specific one.
package grammar

import (
	"regexp"
	"strings"
)

// Kind is the closed set of line grammars.
type Kind uint8

// Kind values, in classification priority order.
const (
	Unknown Kind = iota
	TypeTable
	Multiply
	Pana
	TimeDirect
	Direct
)

var kindNames = [...]string{
	Unknown:    "unknown",
	TypeTable:  "type_table",
	Multiply:   "multiply",
	Pana:       "pana",
	TimeDirect: "time_direct",
	Direct:     "direct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Delimiters is the fixed separator set for pana number lists.
const Delimiters = "/+ ,*"

var (
	reTypeTable = regexp.MustCompile(`(?i)\d+(sp|dp|cp)\s*=\s*\d+`)
	reMultiply  = regexp.MustCompile(`(?i)^\d{2}x\d+$`)
	reValueTail = regexp.MustCompile(`(?i)^(rs?[.,\s]*)?\d+$`)
)

// Classify reports the grammar kind of one trimmed, non-empty line.
// Pure and idempotent: the same line always yields the same kind.
func Classify(line string) Kind {
	line = strings.TrimSpace(line)
	if line == "" {
		return Unknown
	}

	if reTypeTable.MatchString(line) {
		return TypeTable
	}
	if reMultiply.MatchString(line) {
		return Multiply
	}

	left, right, hasEq := strings.Cut(line, "=")
	left = strings.TrimSpace(left)

	if hasEq {
		// doubled '=' is tolerated in handwritten slips
		right = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(right), "="))
	}

	if isPanaShape(left, right, hasEq) {
		return Pana
	}
	if hasEq && isTimeShape(left) && valueShape(right) {
		return TimeDirect
	}
	if hasEq && isNumeral(left) && len(left) <= 3 && valueShape(right) {
		return Direct
	}
	return Unknown
}

// isPanaShape reports whether the portion left of '=' (or the whole line
// when hasEq is false) looks like a pana number list. Three shapes qualify:
// a list of two or more numerals with at least one three-digit member, a
// single numeral with a trailing delimiter (continuation), and, when '='
// is present, an empty left side (a bare "= value" group closer).
func isPanaShape(left, right string, hasEq bool) bool {
	if left == "" {
		// "= 260" / "=Rs. 400" close an open multi-line group
		return hasEq && valueShape(right) && right != ""
	}
	runs, threeDigit, clean := numeralRuns(left)
	if !clean || runs == 0 {
		return false
	}
	if hasEq && !valueShape(right) {
		return false
	}
	if !hasEq {
		// continuation lines never lean on whitespace alone; a real
		// delimiter (or trailing delimiter) marks intent
		if !strings.ContainsAny(left, "/+,*") {
			return false
		}
	}
	if runs >= 2 {
		return threeDigit
	}
	// single numeral: only a trailing delimiter makes it a list fragment
	return threeDigit && endsWithDelimiter(left)
}

// isTimeShape reports whether left is one or more single-digit columns
// separated by whitespace only.
func isTimeShape(left string) bool {
	if left == "" {
		return false
	}
	fields := strings.Fields(left)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if len(f) != 1 || f[0] < '0' || f[0] > '9' {
			return false
		}
	}
	return true
}

// valueShape reports whether s is an optional currency marker followed by
// digits (the shape of everything right of '=').
func valueShape(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return reValueTail.MatchString(s)
}

// numeralRuns scans s counting digit runs. threeDigit reports whether any
// run is exactly three digits; clean reports whether every non-digit rune
// is one of the five delimiters.
func numeralRuns(s string) (runs int, threeDigit bool, clean bool) {
	clean = true
	runLen := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			runLen++
			continue
		}
		if runLen > 0 {
			runs++
			if runLen == 3 {
				threeDigit = true
			}
			runLen = 0
		}
		if !strings.ContainsRune(Delimiters, r) {
			clean = false
		}
	}
	if runLen > 0 {
		runs++
		if runLen == 3 {
			threeDigit = true
		}
	}
	return runs, threeDigit, clean
}

func endsWithDelimiter(s string) bool {
	if s == "" {
		return false
	}
	return strings.ContainsAny(s[len(s)-1:], "/+,*")
}

func isNumeral(s string) bool {
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
