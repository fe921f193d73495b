// Package slipparse turns free-form slip text into typed entries.
//
// A slip is whatever the customer actually sent: pana groups spread over
// several lines, SP/DP/CP table rows, time rows, two-digit multiplies and
// direct number=value rows, in any order and any notation the messengers
// allow. Parse never rejects a whole slip for one bad line; it returns
// every entry it could read plus a diagnostic per line (or pana group) it
// could not.
package slipparse

import (
	"tallybook/internal/core/grammar"
	"tallybook/internal/core/refdata"
	"tallybook/internal/core/sliptext"
)

// Parse normalizes text, classifies each line and dispatches it to the
// matching entry parser. A pana group that is open gets first claim on
// every line, so lists keep accumulating across rows of other kinds
// without being cut short.
func Parse(text string, snap refdata.Snapshot) *Batch {
	batch := &Batch{}
	scan := &panaScanner{snap: snap, batch: batch}

	for _, line := range sliptext.Lines(text) {
		kind := grammar.Classify(line)
		if scan.feed(line, kind) {
			continue
		}
		switch kind {
		case grammar.TypeTable:
			parseTypeTable(snap, batch, line)
		case grammar.Multiply:
			parseMultiply(batch, line)
		case grammar.TimeDirect:
			parseTimeDirect(batch, line)
		case grammar.Direct:
			parseDirect(batch, line)
		default:
			batch.diag(line, structuralf("unrecognized line"))
		}
	}
	scan.finish()
	return batch
}
