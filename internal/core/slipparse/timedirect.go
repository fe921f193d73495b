package slipparse

import (
	"strconv"
	"strings"
)

// parseTimeDirect reads a row of single-digit time columns and the value
// that applies to each of them: "1 2 5 = 100" stakes 100 on columns 1, 2
// and 5. Column order is preserved as written.
func parseTimeDirect(batch *Batch, line string) {
	left, right, ok := splitEq(line)
	if !ok {
		batch.diag(line, structuralf("time row missing '='"))
		return
	}

	fields := strings.Fields(left)
	cols := make([]int, 0, len(fields))
	for _, f := range fields {
		if len(f) != 1 || f[0] < '0' || f[0] > '9' {
			batch.diag(line, structuralf("time column %q must be a single digit", f))
			return
		}
		n, _ := strconv.Atoi(f)
		cols = append(cols, n)
	}
	if err := validateTimeColumns(cols); err != nil {
		batch.diag(line, err)
		return
	}

	value, err := parseValue(right)
	if err != nil {
		batch.diag(line, err)
		return
	}
	batch.Times = append(batch.Times, TimeEntry{Columns: cols, Value: value})
}
