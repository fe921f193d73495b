package slipparse

import (
	"regexp"
	"strconv"
	"strings"

	"tallybook/internal/core/refdata"
)

// reTypeEntry matches one column token: a column numeral immediately
// followed by a table code, then '=value'. A single line may carry several.
var reTypeEntry = regexp.MustCompile(`(?i)(\d+)(sp|dp|cp)\s*=\s*(\d+)`)

// parseTypeTable resolves every column token on the line. The line is
// atomic: one bad token discards the whole line to a diagnostic, so the
// slip total never reflects a partially applied row.
func parseTypeTable(snap refdata.Snapshot, batch *Batch, line string) {
	ms := reTypeEntry.FindAllStringSubmatchIndex(line, -1)
	if len(ms) == 0 {
		batch.diag(line, structuralf("no table entries found"))
		return
	}

	// everything between and around tokens must be blank; stray text means
	// the writer meant something we did not read
	prev := 0
	for _, m := range ms {
		if strings.TrimSpace(line[prev:m[0]]) != "" {
			batch.diag(line, structuralf("unreadable text %q between table entries", strings.TrimSpace(line[prev:m[0]])))
			return
		}
		prev = m[1]
	}
	if strings.TrimSpace(line[prev:]) != "" {
		batch.diag(line, structuralf("unreadable text %q after table entries", strings.TrimSpace(line[prev:])))
		return
	}

	entries := make([]TypeEntry, 0, len(ms))
	for _, m := range ms {
		col, err := strconv.Atoi(line[m[2]:m[3]])
		if err != nil {
			batch.diag(line, structuralf("column %q out of range", line[m[2]:m[3]]))
			return
		}
		kind, ok := refdata.ParseKind(line[m[4]:m[5]])
		if !ok {
			batch.diag(line, structuralf("unknown table code %q", line[m[4]:m[5]]))
			return
		}
		value, err := strconv.Atoi(line[m[6]:m[7]])
		if err != nil {
			batch.diag(line, structuralf("value %q out of range", line[m[6]:m[7]]))
			return
		}
		if value <= 0 {
			batch.diag(line, validationf("value must be positive, got %d", value))
			return
		}
		if err := validateColumn(kind, col); err != nil {
			batch.diag(line, err)
			return
		}
		expanded := snap.Expand(kind, col)
		if len(expanded) == 0 {
			batch.diag(line, validationf("no %s numbers for column %d", kind, col))
			return
		}
		entries = append(entries, TypeEntry{Table: kind, Column: col, Value: value, Expanded: expanded})
	}
	batch.Types = append(batch.Types, entries...)
}
