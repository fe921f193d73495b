// Package jodi reads two-digit pair slips. Jodi notation is its own
// dialect (hyphen-joined two-digit numbers over one or more lines,
// closed by '=value') and never mixes with the pana/table grammars, so
// it parses as a block: the whole text yields one entry or one error.
package jodi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tallybook/internal/core/sliptext"
)

var (
	reList  = regexp.MustCompile(`^\d{2}(\s*-\s*\d{2})*\s*-?\s*$`)
	reValue = regexp.MustCompile(`(?i)^=?\s*(?:rs?[.,\s]*)?(\d+)$`)
	reStart = regexp.MustCompile(`^\d{2}\s*-`)
)

// Entry is one parsed jodi block: every number takes the full value.
type Entry struct {
	Numbers []int `json:"numbers"`
	Value   int   `json:"value"`
}

// Total is count times value; jodi has no partial credits.
func (e *Entry) Total() int { return len(e.Numbers) * e.Value }

// Looks reports whether text starts like a jodi block: a two-digit
// number followed by a hyphen. Used for routing only; Parse decides.
func Looks(text string) bool {
	for _, ln := range sliptext.Lines(text) {
		return reStart.MatchString(ln)
	}
	return false
}

// Parse reads a whole jodi block. Number lines accumulate until a line
// carrying '=' closes the block; trailing hyphens continue the list on
// the next line.
func Parse(text string) (*Entry, error) {
	e := &Entry{}
	seen := map[int]bool{}
	closed := false

	for _, line := range sliptext.Lines(text) {
		if closed {
			return nil, fmt.Errorf("jodi: text continues after the value line: %q", line)
		}
		left, right, hasEq := strings.Cut(line, "=")
		left = strings.TrimSpace(left)

		if left != "" {
			if !reList.MatchString(left) {
				return nil, fmt.Errorf("jodi: bad number list %q, want two-digit numbers joined by '-'", left)
			}
			for _, tok := range strings.Split(left, "-") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				n, err := strconv.Atoi(tok)
				if err != nil || n < 0 || n > 99 {
					return nil, fmt.Errorf("jodi: number %q out of range", tok)
				}
				if seen[n] {
					return nil, fmt.Errorf("jodi: duplicate number %02d", n)
				}
				seen[n] = true
				e.Numbers = append(e.Numbers, n)
			}
		}

		if hasEq {
			m := reValue.FindStringSubmatch(strings.TrimSpace(right))
			if m == nil {
				return nil, fmt.Errorf("jodi: no numeric value after '='")
			}
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("jodi: value %q too large", m[1])
			}
			if v <= 0 {
				return nil, fmt.Errorf("jodi: value must be positive, got %d", v)
			}
			e.Value = v
			closed = true
		}
	}

	if !closed {
		return nil, fmt.Errorf("jodi: no '=value' line closes the block")
	}
	if len(e.Numbers) == 0 {
		return nil, fmt.Errorf("jodi: no numbers before the value")
	}
	return e, nil
}
