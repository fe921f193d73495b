// Package tally turns a parsed batch into money: per-kind totals, the
// grand total, and the per-number credit rows the ledgers persist.
//
// The arithmetic is deliberately dumb. A chart column entry is worth
// value times the numbers it expands to; a time row credits every named
// column with the full value, not a share of it. A multiply counts its
// value once in the total but still credits both digit columns in full,
// so the total and the ledger rows are different sums on purpose.
package tally

import (
	"sort"

	"tallybook/internal/core/refdata"
	"tallybook/internal/core/slipparse"
)

// Credit is one aggregated ledger row: a pana number (or time column)
// and the amount staked on it across the whole slip.
type Credit struct {
	Number int `json:"number"`
	Amount int `json:"amount"`
}

// Result carries the calculated view of one batch.
type Result struct {
	Pana   int `json:"pana"`
	Type   int `json:"type"`
	Time   int `json:"time"`
	Multi  int `json:"multi"`
	Direct int `json:"direct"`
	Grand  int `json:"grand"`

	// PanaCredits aggregates pana, chart expansion and direct entries by
	// number; TimeCredits aggregates time and multiply entries by column.
	// Both are sorted by number for stable display and persistence.
	PanaCredits []Credit `json:"pana_credits"`
	TimeCredits []Credit `json:"time_credits"`
}

// Calculate folds a batch into totals and credit rows. It never fails:
// a batch that parsed is always calculable.
func Calculate(b *slipparse.Batch) *Result {
	r := &Result{}
	pana := map[int]int{}
	time := map[int]int{}

	for _, e := range b.Panas {
		r.Pana += e.Value
		pana[e.Number] += e.Value
	}
	for _, e := range b.Types {
		r.Type += e.Value * len(e.Expanded)
		for _, n := range e.Expanded {
			pana[n] += e.Value
		}
	}
	for _, e := range b.Times {
		r.Time += e.Value * len(e.Columns)
		for _, c := range e.Columns {
			time[c] += e.Value
		}
	}
	for _, e := range b.Multis {
		// value counts once no matter how many columns it lands on
		r.Multi += e.Value
		time[e.Tens] += e.Value
		time[e.Units] += e.Value
	}
	for _, e := range b.Directs {
		r.Direct += e.Value
		pana[e.Number] += e.Value
	}

	r.Grand = r.Pana + r.Type + r.Time + r.Multi + r.Direct
	r.PanaCredits = sortCredits(pana)
	r.TimeCredits = sortCredits(time)
	return r
}

// ParseAndCalculate is the one-call form used by the preview paths.
func ParseAndCalculate(text string, snap refdata.Snapshot) (*slipparse.Batch, *Result) {
	b := slipparse.Parse(text, snap)
	return b, Calculate(b)
}

func sortCredits(m map[int]int) []Credit {
	if len(m) == 0 {
		return nil
	}
	out := make([]Credit, 0, len(m))
	for n, amt := range m {
		out = append(out, Credit{Number: n, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
