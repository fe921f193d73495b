package refdata

import "testing"

func mustPack(t *testing.T) *Pack {
	t.Helper()
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func TestLoadEmbeddedDataset(t *testing.T) {
	p := mustPack(t)

	if got := len(p.PanaNumbers()); got != 219 {
		t.Fatalf("pana count = %d, want 219", got)
	}
	for _, kind := range []TableKind{SP, DP} {
		cols := p.Columns(kind)
		if len(cols) != 10 {
			t.Fatalf("%s columns = %d, want 10", kind, len(cols))
		}
	}
	// SP columns carry 12 singles each, DP columns 9 doubles each
	for col := 1; col <= 10; col++ {
		if n := len(p.Expand(SP, col)); n != 12 {
			t.Errorf("SP col %d size = %d, want 12", col, n)
		}
		if n := len(p.Expand(DP, col)); n != 9 {
			t.Errorf("DP col %d size = %d, want 9", col, n)
		}
	}
	// CP carries 11-99 plus the sentinel column
	if n := len(p.Columns(CP)); n != 90 {
		t.Fatalf("CP columns = %d, want 90", n)
	}
	if len(p.Expand(CP, 0)) == 0 || len(p.Expand(CP, 99)) == 0 {
		t.Fatalf("CP sentinel and 99 columns must be non-empty")
	}
}

func TestValidPana(t *testing.T) {
	p := mustPack(t)
	for _, n := range []int{128, 137, 100, 999, Sentinel} {
		if !p.ValidPana(n) {
			t.Errorf("ValidPana(%d) = false, want true", n)
		}
	}
	for _, n := range []int{1, 99, 1000, 121} {
		if p.ValidPana(n) {
			t.Errorf("ValidPana(%d) = true, want false", n)
		}
	}
}

func TestExpandReturnsCopies(t *testing.T) {
	p := mustPack(t)
	a := p.Expand(SP, 1)
	if len(a) == 0 {
		t.Fatal("SP col 1 empty")
	}
	a[0] = -1
	b := p.Expand(SP, 1)
	if b[0] == -1 {
		t.Fatal("Expand must not alias internal storage")
	}
}

func TestExpandUnknownColumn(t *testing.T) {
	p := mustPack(t)
	if got := p.Expand(SP, 11); got != nil {
		t.Fatalf("Expand(SP,11) = %v, want nil", got)
	}
	if got := p.Expand(CP, 10); got != nil {
		t.Fatalf("Expand(CP,10) = %v, want nil", got)
	}
}

func TestValidColumn(t *testing.T) {
	cases := []struct {
		kind TableKind
		col  int
		want bool
	}{
		{SP, 1, true}, {SP, 10, true}, {SP, 0, false}, {SP, 11, false},
		{DP, 5, true}, {DP, 11, false},
		{CP, 0, true}, {CP, 11, true}, {CP, 99, true},
		{CP, 10, false}, {CP, 100, false}, {CP, 1, false},
	}
	for _, tc := range cases {
		if got := ValidColumn(tc.kind, tc.col); got != tc.want {
			t.Errorf("ValidColumn(%s,%d) = %v, want %v", tc.kind, tc.col, got, tc.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"sp", "SP", "Sp"} {
		if k, ok := ParseKind(s); !ok || k != SP {
			t.Errorf("ParseKind(%q) = %v %v", s, k, ok)
		}
	}
	if _, ok := ParseKind("xp"); ok {
		t.Error("ParseKind(xp) must fail")
	}
}

func TestNewRejectsBadDatasets(t *testing.T) {
	valid := map[TableKind]map[int][]int{
		SP: {1: {128}},
		DP: {1: {100}},
		CP: {11: {112}},
	}
	panas := []int{100, 112, 128}

	if _, err := New(1, panas, valid); err != nil {
		t.Fatalf("valid dataset rejected: %v", err)
	}
	if _, err := New(1, []int{99}, valid); err == nil {
		t.Error("out of range pana accepted")
	}
	if _, err := New(1, []int{128, 128}, valid); err == nil {
		t.Error("duplicate pana accepted")
	}
	if _, err := New(1, panas, map[TableKind]map[int][]int{
		SP: {11: {128}}, DP: {1: {100}}, CP: {11: {112}},
	}); err == nil {
		t.Error("SP column 11 accepted")
	}
	if _, err := New(1, panas, map[TableKind]map[int][]int{
		SP: {1: {777}}, DP: {1: {100}}, CP: {11: {112}},
	}); err == nil {
		t.Error("non-member chart number accepted")
	}
	if _, err := New(1, panas, map[TableKind]map[int][]int{
		SP: {1: {128}}, DP: {1: {100}},
	}); err == nil {
		t.Error("missing CP chart accepted")
	}
}
