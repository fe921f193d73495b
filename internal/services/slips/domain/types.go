// Package domain holds the slip submission types and contracts
package domain

import (
	"time"
)

// Totals carries the per-kind money view of one slip. Jodi slips fill
// only the jodi lane; mixed slips never fill it.
type Totals struct {
	Pana   int `json:"pana"`
	Type   int `json:"type"`
	Time   int `json:"time"`
	Multi  int `json:"multi"`
	Direct int `json:"direct"`
	Jodi   int `json:"jodi"`
	Grand  int `json:"grand"`
}

// Slip is one persisted submission, mixed or jodi
type Slip struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Customer   string    `json:"customer"`
	Bazar      string    `json:"bazar"`
	EntryDate  time.Time `json:"entry_date"`
	Text       string    `json:"text,omitempty"`
	EntryCount int       `json:"entry_count"`
	Totals     Totals    `json:"totals"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListQuery pages submission history with a keyset cursor.
// A zero EntryDate selects all days.
type ListQuery struct {
	Bazar          string
	Customer       string
	EntryDate      time.Time
	Limit          int
	AfterCreatedAt time.Time
	AfterID        string
}

// LedgerQuery selects one accumulated book: a bazar on a day
type LedgerQuery struct {
	Bazar string
	Day   time.Time
}

// SummaryQuery selects cached per-customer totals over a window
type SummaryQuery struct {
	Bazar    string
	Customer string
	Since    time.Time
	Until    time.Time
}

// PanaLedgerRow is one accumulated pana (or direct) number
type PanaLedgerRow struct {
	Number int `json:"number"`
	Value  int `json:"value"`
}

// TimeLedgerRow is one customer's accumulated 0-9 column row
type TimeLedgerRow struct {
	Customer string  `json:"customer"`
	Cols     [10]int `json:"cols"`
	Total    int     `json:"total"`
}

// JodiLedgerRow is one accumulated two-digit pair
type JodiLedgerRow struct {
	Number int `json:"number"`
	Value  int `json:"value"`
}

// SummaryRow is one customer's cached totals for a bazar day
type SummaryRow struct {
	Customer string    `json:"customer"`
	Bazar    string    `json:"bazar"`
	Day      time.Time `json:"day"`
	Totals
}
