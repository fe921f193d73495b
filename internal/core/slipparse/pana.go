package slipparse

import (
	"strings"

	"tallybook/internal/core/grammar"
	"tallybook/internal/core/refdata"
)

// panaScanner is the two-state multi-line grouping machine: no open group
// until a pana list line arrives, accumulating until a value line closes
// it. Numeral-only lines append to the open group; a pana-shaped line
// carrying '=' closes the group and its value applies to every accumulated
// numeral plus any numerals on the closing line itself. Lines of other
// grammars are not consumed; the orchestrator dispatches them normally and
// the group stays open.
type panaScanner struct {
	snap  refdata.Snapshot
	batch *Batch

	lines   []string
	numbers []int
}

func (s *panaScanner) opened() bool { return len(s.lines) > 0 }

// feed offers one line to the machine and reports whether it was consumed.
// kind is the line's classification; a value line of another kind (a
// direct entry, a time row) must fall through to its own parser even while
// a group is open.
func (s *panaScanner) feed(line string, kind grammar.Kind) bool {
	if !s.opened() && kind != grammar.Pana {
		return false
	}
	left, right, hasEq := splitEq(line)

	if hasEq {
		if kind != grammar.Pana {
			return false
		}
		s.lines = append(s.lines, line)
		s.close(left, right)
		return true
	}

	if !numeralOnly(line) {
		return false
	}
	nums, err := numeralTokens(line)
	if err != nil {
		// numeral-only shape with an unparseable token (eg four digits
		// fused); the group is already committed to this line
		s.lines = append(s.lines, line)
		s.fail(err)
		return true
	}
	if len(nums) == 0 {
		return false
	}
	s.lines = append(s.lines, line)
	s.numbers = append(s.numbers, nums...)
	return true
}

// finish reports a structural failure if input ended with numbers still
// waiting for a value line. Pending numerals are never silently dropped.
func (s *panaScanner) finish() {
	if !s.opened() {
		return
	}
	s.fail(structuralf("pana numbers without a closing '=value' line"))
}

// close resolves the group against the value line. Membership is fail-fast:
// one bad numeral invalidates the whole group, because the group total
// depends on every number being present.
func (s *panaScanner) close(left, right string) {
	closing, err := numeralTokens(left)
	if err != nil {
		s.fail(err)
		return
	}
	numbers := append(s.numbers, closing...)
	if len(numbers) == 0 {
		s.fail(structuralf("no pana numbers before the value"))
		return
	}

	value, err := parseValue(right)
	if err != nil {
		s.fail(err)
		return
	}
	for _, n := range numbers {
		if err := validatePana(s.snap, n); err != nil {
			s.fail(err)
			return
		}
	}

	for _, n := range numbers {
		s.batch.Panas = append(s.batch.Panas, PanaEntry{Number: n, Value: value})
	}
	s.reset()
}

// fail converts the whole pending group into one diagnostic.
func (s *panaScanner) fail(err error) {
	s.batch.diag(strings.Join(s.lines, "\n"), err)
	s.reset()
}

func (s *panaScanner) reset() {
	s.lines = nil
	s.numbers = nil
}
