// Package slipparse turns cleaned slip text into typed entries. It drives
// the line classifier, the five grammar parsers, and the multi-line pana
// grouping machine, collecting per-line diagnostics without ever aborting a
// batch. The package is pure: no I/O, no clocks, no mutation of the
// reference snapshot it reads.
package slipparse

import (
	"tallybook/internal/core/refdata"
)

// PanaEntry is one concrete pana number with the value its group carries.
type PanaEntry struct {
	Number int
	Value  int
}

// TypeEntry is a chart column reference expanded against the snapshot.
// Expanded is never empty for an entry that made it into a batch.
type TypeEntry struct {
	Table    refdata.TableKind
	Column   int
	Value    int
	Expanded []int
}

// TimeEntry is a set of 0-9 columns sharing one value. Columns keeps input
// order and holds no duplicates.
type TimeEntry struct {
	Columns []int
	Value   int
}

// MultiEntry is a two-digit multiplication entry, split into its decimal
// digits (zero-padded to width 2).
type MultiEntry struct {
	Number int
	Tens   int
	Units  int
	Value  int
}

// DirectEntry is a single number assignment that skips pana-set membership.
type DirectEntry struct {
	Number int
	Value  int
}

// Diagnostic ties a failed line (or line group) to a human-readable reason.
type Diagnostic struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

// Batch aggregates everything one parse run produced. Entry order within a
// kind follows input order; it matters for display and audit only, never
// for totals.
type Batch struct {
	Panas   []PanaEntry
	Types   []TypeEntry
	Times   []TimeEntry
	Multis  []MultiEntry
	Directs []DirectEntry

	Diagnostics []Diagnostic
}

// EntryCount reports how many typed entries the batch holds.
func (b *Batch) EntryCount() int {
	return len(b.Panas) + len(b.Types) + len(b.Times) + len(b.Multis) + len(b.Directs)
}

// Empty reports whether nothing at all was extracted.
func (b *Batch) Empty() bool { return b.EntryCount() == 0 }

func (b *Batch) diag(line string, err error) {
	b.Diagnostics = append(b.Diagnostics, Diagnostic{Line: line, Reason: err.Error()})
}
