package slipparse

import (
	"regexp"
	"strconv"
)

// reMultiply is strict: exactly two digits, 'x', then the value. Anything
// longer on either side is some other notation and must not half-match.
var reMultiply = regexp.MustCompile(`(?i)^(\d{2})x(\d+)$`)

// parseMultiply reads a two-digit multiplication like "38x700": the stake
// lands on both digit columns of the number, tens and units.
func parseMultiply(batch *Batch, line string) {
	m := reMultiply.FindStringSubmatch(line)
	if m == nil {
		batch.diag(line, structuralf("bad multiply row, want DDxVALUE"))
		return
	}
	number, _ := strconv.Atoi(m[1])
	value, err := strconv.Atoi(m[2])
	if err != nil {
		batch.diag(line, structuralf("value %q out of range", m[2]))
		return
	}
	if value <= 0 {
		batch.diag(line, validationf("value must be positive, got %d", value))
		return
	}
	batch.Multis = append(batch.Multis, MultiEntry{
		Number: number,
		Tens:   number / 10,
		Units:  number % 10,
		Value:  value,
	})
}
