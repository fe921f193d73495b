// Package refdata loads and serves the immutable numbering reference set:
// the valid pana numbers and the SP/DP/CP column charts. The dataset is
// declarative JSON (embedded seed, or rows hydrated from storage), validated
// once at load into a read-only Pack that concurrent parses share without
// locking.
package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed tables.json
var embedded []byte

// TableKind names one of the three reference charts.
type TableKind uint8

// The three chart kinds.
const (
	SP TableKind = iota
	DP
	CP
)

var kindNames = [...]string{SP: "SP", DP: "DP", CP: "CP"}

func (k TableKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TableKind(%d)", uint8(k))
}

// ParseKind maps a table code (any case) to its TableKind.
func ParseKind(s string) (TableKind, bool) {
	switch {
	case strings.EqualFold(s, "sp"):
		return SP, true
	case strings.EqualFold(s, "dp"):
		return DP, true
	case strings.EqualFold(s, "cp"):
		return CP, true
	}
	return 0, false
}

// Sentinel is the pana value that stands outside the three-digit set but is
// accepted everywhere a pana number is (and as the special CP column).
const Sentinel = 0

// ValidColumn reports whether column is in range for kind.
// SP and DP charts have columns 1-10; CP has 11-99 plus the sentinel 0.
func ValidColumn(kind TableKind, column int) bool {
	switch kind {
	case SP, DP:
		return column >= 1 && column <= 10
	case CP:
		return column == Sentinel || (column >= 11 && column <= 99)
	}
	return false
}

// Snapshot is the read-only view the parsing core consumes.
type Snapshot interface {
	// ValidPana reports membership in the pana set; the sentinel 0 is
	// always valid.
	ValidPana(n int) bool
	// Expand returns the ordered numbers for (kind, column), or nil when
	// the chart has no such column. The returned slice is a copy.
	Expand(kind TableKind, column int) []int
	// Columns returns the sorted column indexes present for kind.
	Columns(kind TableKind) []int
}

// Pack is the validated, immutable dataset. It implements Snapshot.
type Pack struct {
	version int
	panas   map[int]struct{}
	ordered []int
	tables  map[TableKind]map[int][]int
}

var _ Snapshot = (*Pack)(nil)

// Version reports the dataset version.
func (p *Pack) Version() int { return p.version }

// ValidPana implements Snapshot.
func (p *Pack) ValidPana(n int) bool {
	if n == Sentinel {
		return true
	}
	_, ok := p.panas[n]
	return ok
}

// PanaNumbers returns the sorted member list (sentinel excluded).
func (p *Pack) PanaNumbers() []int {
	out := make([]int, len(p.ordered))
	copy(out, p.ordered)
	return out
}

// Expand implements Snapshot.
func (p *Pack) Expand(kind TableKind, column int) []int {
	cols, ok := p.tables[kind]
	if !ok {
		return nil
	}
	nums, ok := cols[column]
	if !ok {
		return nil
	}
	out := make([]int, len(nums))
	copy(out, nums)
	return out
}

// Columns implements Snapshot.
func (p *Pack) Columns(kind TableKind) []int {
	cols, ok := p.tables[kind]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(cols))
	for c := range cols {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// New validates a dataset and freezes it into a Pack. Inputs are copied.
// Every pana must be three-digit (100-999); every chart column must be in
// range for its kind, non-empty, and reference only set members.
func New(version int, panas []int, tables map[TableKind]map[int][]int) (*Pack, error) {
	if len(panas) == 0 {
		return nil, fmt.Errorf("refdata: empty pana set")
	}
	set := make(map[int]struct{}, len(panas))
	ordered := make([]int, 0, len(panas))
	for _, n := range panas {
		if n < 100 || n > 999 {
			return nil, fmt.Errorf("refdata: pana %d out of range", n)
		}
		if _, dup := set[n]; dup {
			return nil, fmt.Errorf("refdata: duplicate pana %d", n)
		}
		set[n] = struct{}{}
		ordered = append(ordered, n)
	}
	sort.Ints(ordered)

	frozen := make(map[TableKind]map[int][]int, len(tables))
	for kind, cols := range tables {
		if int(kind) >= len(kindNames) {
			return nil, fmt.Errorf("refdata: unknown table kind %d", kind)
		}
		if len(cols) == 0 {
			return nil, fmt.Errorf("refdata: %s chart is empty", kind)
		}
		fcols := make(map[int][]int, len(cols))
		for col, nums := range cols {
			if !ValidColumn(kind, col) {
				return nil, fmt.Errorf("refdata: %s column %d out of range", kind, col)
			}
			if len(nums) == 0 {
				return nil, fmt.Errorf("refdata: %s column %d is empty", kind, col)
			}
			cp := make([]int, len(nums))
			copy(cp, nums)
			sort.Ints(cp)
			for _, n := range cp {
				if _, ok := set[n]; !ok {
					return nil, fmt.Errorf("refdata: %s column %d references %d outside the pana set", kind, col, n)
				}
			}
			fcols[col] = cp
		}
		frozen[kind] = fcols
	}
	for _, kind := range []TableKind{SP, DP, CP} {
		if _, ok := frozen[kind]; !ok {
			return nil, fmt.Errorf("refdata: %s chart missing", kind)
		}
	}

	return &Pack{version: version, panas: set, ordered: ordered, tables: frozen}, nil
}

type fileFormat struct {
	Version int                         `json:"version"`
	Panas   []int                       `json:"panas"`
	Tables  map[string]map[string][]int `json:"tables"`
}

// Load decodes and validates the embedded dataset.
func Load() (*Pack, error) {
	return decode(embedded)
}

// MustLoad is Load for process start paths where the embedded dataset being
// broken means the build is broken.
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

func decode(raw []byte) (*Pack, error) {
	var f fileFormat
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("refdata: decode: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("refdata: unsupported version %d", f.Version)
	}
	tables := make(map[TableKind]map[int][]int, len(f.Tables))
	for code, cols := range f.Tables {
		kind, ok := ParseKind(code)
		if !ok {
			return nil, fmt.Errorf("refdata: unknown table code %q", code)
		}
		kcols := make(map[int][]int, len(cols))
		for colStr, nums := range cols {
			col, err := strconv.Atoi(colStr)
			if err != nil {
				return nil, fmt.Errorf("refdata: bad column key %q for %s", colStr, kind)
			}
			kcols[col] = nums
		}
		tables[kind] = kcols
	}
	return New(f.Version, f.Panas, tables)
}
