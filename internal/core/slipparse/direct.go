package slipparse

import (
	"strconv"
	"strings"
)

// parseDirect reads a plain "number = value" row. Direct numbers are not
// checked against the pana charts; 128 and 129 are equally acceptable as
// long as they sit in 1..999.
func parseDirect(batch *Batch, line string) {
	left, right, ok := splitEq(line)
	if !ok {
		batch.diag(line, structuralf("direct row missing '='"))
		return
	}
	left = strings.TrimSpace(left)
	if !allDigits(left) || len(left) == 0 || len(left) > 3 {
		batch.diag(line, structuralf("direct number %q must be 1-3 digits", left))
		return
	}
	number, _ := strconv.Atoi(left)
	if err := validateDirect(number); err != nil {
		batch.diag(line, err)
		return
	}
	value, err := parseValue(right)
	if err != nil {
		batch.diag(line, err)
		return
	}
	batch.Directs = append(batch.Directs, DirectEntry{Number: number, Value: value})
}
