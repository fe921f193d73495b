// Package domain defines the types and interfaces for the entry log service
package domain

import "time"

// Entry kinds as stored in the log
const (
	KindPana   = "pana"
	KindType   = "type"
	KindTime   = "time"
	KindMulti  = "multi"
	KindDirect = "direct"
	KindJodi   = "jodi"
)

// Entry is one concrete expanded row in the append-only log. Chart
// columns arrive already expanded, so Number is always a single number
// (or time column) in text form.
type Entry struct {
	EntryID    string
	SlipID     string
	Customer   string
	Bazar      string
	EntryDate  time.Time
	Kind       string
	Number     string
	Value      int
	SourceLine string
	Source     string
	CreatedAt  time.Time
}

// TopQuery selects the busiest numbers in a window
type TopQuery struct {
	Bazar string
	Since time.Time
	Until time.Time
	Kind  string
	Limit int
}

// TopNumberRow is one aggregate row of TopNumbers
type TopNumberRow struct {
	Number  string `json:"number"`
	Entries int64  `json:"entries"`
	Staked  int64  `json:"staked"`
}

// ActivityQuery selects per-customer traffic in a window
type ActivityQuery struct {
	Bazar    string
	Customer string
	Since    time.Time
	Until    time.Time
}

// ActivityRow is one aggregate row of Activity
type ActivityRow struct {
	Day      time.Time `json:"day"`
	Customer string    `json:"customer"`
	Kind     string    `json:"kind"`
	Entries  int64     `json:"entries"`
	Staked   int64     `json:"staked"`
}
