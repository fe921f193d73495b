package slipparse

import (
	"strings"
	"testing"

	"tallybook/internal/core/refdata"
)

var snap = refdata.MustLoad()

func mustParse(t *testing.T, text string) *Batch {
	t.Helper()
	b := Parse(text, snap)
	if len(b.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", b.Diagnostics)
	}
	return b
}

func panaTotal(b *Batch) int {
	total := 0
	for _, e := range b.Panas {
		total += e.Value
	}
	return total
}

func TestParsePanaSingleLine(t *testing.T) {
	b := mustParse(t, "128/129/120 = 100")
	if len(b.Panas) != 3 {
		t.Fatalf("want 3 pana entries, got %d", len(b.Panas))
	}
	for i, want := range []int{128, 129, 120} {
		if b.Panas[i].Number != want || b.Panas[i].Value != 100 {
			t.Fatalf("entry %d = %+v, want {%d 100}", i, b.Panas[i], want)
		}
	}
	if panaTotal(b) != 300 {
		t.Fatalf("want total 300, got %d", panaTotal(b))
	}
}

func TestParsePanaDelimiterChoiceIsIrrelevant(t *testing.T) {
	base := mustParse(t, "128/129/120 = 100")
	for _, text := range []string{
		"128,129,120 = 100",
		"128+129+120 = 100",
		"128 129 120 = 100",
		"128*129*120 = 100",
		"128/129,120 = 100",
	} {
		b := mustParse(t, text)
		if len(b.Panas) != len(base.Panas) {
			t.Fatalf("%q: want %d entries, got %d", text, len(base.Panas), len(b.Panas))
		}
		for i := range b.Panas {
			if b.Panas[i] != base.Panas[i] {
				t.Fatalf("%q: entry %d = %+v, want %+v", text, i, b.Panas[i], base.Panas[i])
			}
		}
	}
}

func TestParsePanaMultiLineGroup(t *testing.T) {
	b := mustParse(t, "589,478,140,189,\n145,147,370,269,\n= 260")
	if len(b.Panas) != 8 {
		t.Fatalf("want 8 pana entries, got %d", len(b.Panas))
	}
	for _, e := range b.Panas {
		if e.Value != 260 {
			t.Fatalf("entry %+v did not receive the group value", e)
		}
	}
	if panaTotal(b) != 8*260 {
		t.Fatalf("want total %d, got %d", 8*260, panaTotal(b))
	}
}

func TestParsePanaClosingLineCarriesNumbers(t *testing.T) {
	b := mustParse(t, "123,456,\n0/128 = 50")
	if len(b.Panas) != 4 {
		t.Fatalf("want 4 pana entries, got %d", len(b.Panas))
	}
	// 0 is the sentinel slot and joins the group like any chart number
	wantNums := []int{123, 456, 0, 128}
	for i, e := range b.Panas {
		if e.Number != wantNums[i] || e.Value != 50 {
			t.Fatalf("entry %d = %+v, want {%d 50}", i, e, wantNums[i])
		}
	}
}

func TestParsePanaDoubledEqualsCloser(t *testing.T) {
	for _, closer := range []string{"= 500", "== 500", "==500", "=RS,, 500", "=Rs. 500"} {
		b := mustParse(t, "137,289,\n"+closer)
		if len(b.Panas) != 2 || b.Panas[0].Value != 500 || b.Panas[1].Value != 500 {
			t.Fatalf("closer %q: got %+v", closer, b.Panas)
		}
	}
}

func TestParsePanaGroupSurvivesInterleavedLines(t *testing.T) {
	// rows of other kinds between pana list lines are read in place and do
	// not cut the open group short
	b := mustParse(t, "589,478,\n1SP=100\n38x700\n140,189,\n= 260")
	if len(b.Panas) != 4 {
		t.Fatalf("want 4 pana entries, got %d: %+v", len(b.Panas), b.Panas)
	}
	for _, e := range b.Panas {
		if e.Value != 260 {
			t.Fatalf("entry %+v did not receive the closing value", e)
		}
	}
	if len(b.Types) != 1 || b.Types[0].Column != 1 || b.Types[0].Table != refdata.SP {
		t.Fatalf("interleaved table row lost: %+v", b.Types)
	}
	if len(b.Multis) != 1 || b.Multis[0].Number != 38 {
		t.Fatalf("interleaved multiply row lost: %+v", b.Multis)
	}
}

func TestParsePanaGroupWithoutCloserDiagnosed(t *testing.T) {
	b := Parse("589,478,140,189,", snap)
	if len(b.Panas) != 0 {
		t.Fatalf("unclosed group must not yield entries, got %+v", b.Panas)
	}
	if len(b.Diagnostics) != 1 {
		t.Fatalf("want 1 diagnostic, got %+v", b.Diagnostics)
	}
	d := b.Diagnostics[0]
	if d.Line != "589,478,140,189," || !strings.Contains(d.Reason, "without a closing") {
		t.Fatalf("diagnostic = %+v", d)
	}
}

func TestParsePanaUnknownNumberFailsWholeGroup(t *testing.T) {
	// 182 is 128 written out of chart order; membership is all or nothing
	b := Parse("128/182/120 = 100", snap)
	if len(b.Panas) != 0 {
		t.Fatalf("bad member must fail the group, got %+v", b.Panas)
	}
	if len(b.Diagnostics) != 1 || !strings.Contains(b.Diagnostics[0].Reason, "182") {
		t.Fatalf("diagnostics = %+v", b.Diagnostics)
	}
}

func TestParsePanaZeroValueRejected(t *testing.T) {
	b := Parse("128/129 = 0", snap)
	if len(b.Panas) != 0 || len(b.Diagnostics) != 1 {
		t.Fatalf("panas=%+v diags=%+v", b.Panas, b.Diagnostics)
	}
	if !strings.Contains(b.Diagnostics[0].Reason, "positive") {
		t.Fatalf("diagnostic = %+v", b.Diagnostics[0])
	}
}

func TestParseTypeTable(t *testing.T) {
	cases := []struct {
		line   string
		table  refdata.TableKind
		column int
		value  int
		size   int
	}{
		{"1SP=100", refdata.SP, 1, 100, 12},
		{"10sp=40", refdata.SP, 10, 40, 12},
		{"5DP=200", refdata.DP, 5, 200, 9},
		{"15CP=300", refdata.CP, 15, 300, 0},
		{"0CP=500", refdata.CP, 0, 500, 0},
	}
	for _, tc := range cases {
		b := mustParse(t, tc.line)
		if len(b.Types) != 1 {
			t.Fatalf("%q: want 1 entry, got %+v", tc.line, b.Types)
		}
		e := b.Types[0]
		if e.Table != tc.table || e.Column != tc.column || e.Value != tc.value {
			t.Fatalf("%q: entry = %+v", tc.line, e)
		}
		if len(e.Expanded) == 0 {
			t.Fatalf("%q: empty expansion", tc.line)
		}
		if tc.size != 0 && len(e.Expanded) != tc.size {
			t.Fatalf("%q: want %d numbers, got %d", tc.line, tc.size, len(e.Expanded))
		}
	}
}

func TestParseTypeTableManyOnOneLine(t *testing.T) {
	b := mustParse(t, "1SP=100 2DP=75 11CP=60")
	if len(b.Types) != 3 {
		t.Fatalf("want 3 entries, got %+v", b.Types)
	}
	if b.Types[0].Table != refdata.SP || b.Types[1].Table != refdata.DP || b.Types[2].Table != refdata.CP {
		t.Fatalf("entries out of order: %+v", b.Types)
	}
}

func TestParseTypeTableBadColumn(t *testing.T) {
	for _, line := range []string{"11SP=100", "0DP=100", "10CP=100", "100CP=100"} {
		b := Parse(line, snap)
		if len(b.Types) != 0 || len(b.Diagnostics) != 1 {
			t.Fatalf("%q: types=%+v diags=%+v", line, b.Types, b.Diagnostics)
		}
	}
}

func TestParseTypeTableStrayTextRejected(t *testing.T) {
	b := Parse("1SP=100 pay later", snap)
	if len(b.Types) != 0 {
		t.Fatalf("partial line must not produce entries: %+v", b.Types)
	}
	if len(b.Diagnostics) != 1 || !strings.Contains(b.Diagnostics[0].Reason, "pay later") {
		t.Fatalf("diagnostics = %+v", b.Diagnostics)
	}
}

func TestParseTimeDirect(t *testing.T) {
	cases := []struct {
		line  string
		cols  []int
		value int
	}{
		{"1 2 5 = 100", []int{1, 2, 5}, 100},
		{"9=Rs 50", []int{9}, 50},
		{"0 1 3 5 == 900", []int{0, 1, 3, 5}, 900},
		{"5 2 8 = 60", []int{5, 2, 8}, 60},
	}
	for _, tc := range cases {
		b := mustParse(t, tc.line)
		if len(b.Times) != 1 {
			t.Fatalf("%q: want 1 entry, got %+v", tc.line, b.Times)
		}
		e := b.Times[0]
		if e.Value != tc.value || len(e.Columns) != len(tc.cols) {
			t.Fatalf("%q: entry = %+v", tc.line, e)
		}
		for i, c := range tc.cols {
			if e.Columns[i] != c {
				t.Fatalf("%q: columns = %v, want %v", tc.line, e.Columns, tc.cols)
			}
		}
	}
}

func TestParseTimeDuplicateColumnRejected(t *testing.T) {
	b := Parse("1 1 5 = 100", snap)
	if len(b.Times) != 0 || len(b.Diagnostics) != 1 {
		t.Fatalf("times=%+v diags=%+v", b.Times, b.Diagnostics)
	}
}

func TestParseMultiply(t *testing.T) {
	b := mustParse(t, "38x700")
	if len(b.Multis) != 1 {
		t.Fatalf("want 1 entry, got %+v", b.Multis)
	}
	e := b.Multis[0]
	if e.Number != 38 || e.Tens != 3 || e.Units != 8 || e.Value != 700 {
		t.Fatalf("entry = %+v", e)
	}

	b = mustParse(t, "05X100")
	e = b.Multis[0]
	if e.Number != 5 || e.Tens != 0 || e.Units != 5 || e.Value != 100 {
		t.Fatalf("leading zero entry = %+v", e)
	}
}

func TestParseDirect(t *testing.T) {
	cases := []struct {
		line   string
		number int
		value  int
	}{
		{"128 = Rs. 100", 128, 100},
		{"55=100", 55, 100},
		{"999=10", 999, 10},
	}
	for _, tc := range cases {
		b := mustParse(t, tc.line)
		if len(b.Directs) != 1 || b.Directs[0].Number != tc.number || b.Directs[0].Value != tc.value {
			t.Fatalf("%q: directs = %+v", tc.line, b.Directs)
		}
	}
}

func TestParseSingleDigitGoesToTimeNotDirect(t *testing.T) {
	b := mustParse(t, "7=300")
	if len(b.Directs) != 0 || len(b.Times) != 1 {
		t.Fatalf("directs=%+v times=%+v", b.Directs, b.Times)
	}
	if b.Times[0].Columns[0] != 7 || b.Times[0].Value != 300 {
		t.Fatalf("entry = %+v", b.Times[0])
	}
}

func TestParseBadLineKeepsTheRest(t *testing.T) {
	b := Parse("128/129/120 = 100\ntotal kya hua\n38x700", snap)
	if len(b.Panas) != 3 || len(b.Multis) != 1 {
		t.Fatalf("good lines lost: panas=%+v multis=%+v", b.Panas, b.Multis)
	}
	if len(b.Diagnostics) != 1 || b.Diagnostics[0].Line != "total kya hua" {
		t.Fatalf("diagnostics = %+v", b.Diagnostics)
	}
}

func TestParseNormalizesUnicodeForms(t *testing.T) {
	// fullwidth digits and a decorated separator, as pasted from chat apps
	b := mustParse(t, "１２８/１２９ = １００")
	if len(b.Panas) != 2 || b.Panas[0].Number != 128 || b.Panas[1].Number != 129 {
		t.Fatalf("panas = %+v", b.Panas)
	}
	if b.Panas[0].Value != 100 {
		t.Fatalf("value = %d", b.Panas[0].Value)
	}
}

func TestParseEmptyInput(t *testing.T) {
	b := Parse("", snap)
	if !b.Empty() || len(b.Diagnostics) != 0 {
		t.Fatalf("empty input produced %+v", b)
	}
	b = Parse("\n\n   \n", snap)
	if !b.Empty() || len(b.Diagnostics) != 0 {
		t.Fatalf("blank input produced %+v", b)
	}
}

func TestParseMixedSlip(t *testing.T) {
	text := strings.Join([]string{
		"1SP=100 2DP=75",
		"38x700",
		"589,478,140,189,",
		"145,147,370,269,",
		"= 260",
		"1 2 5 = 100",
		"128 = Rs. 100",
	}, "\n")
	b := mustParse(t, text)
	if len(b.Types) != 2 || len(b.Multis) != 1 || len(b.Panas) != 8 || len(b.Times) != 1 || len(b.Directs) != 1 {
		t.Fatalf("batch = %+v", b)
	}
	if b.EntryCount() != 13 {
		t.Fatalf("want 13 entries, got %d", b.EntryCount())
	}
}
