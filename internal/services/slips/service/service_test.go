package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"tallybook/internal/core/refdata"
	"tallybook/internal/core/tally"
	"tallybook/internal/modkit/repokit"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/store"
	bazarsdom "tallybook/internal/services/bazars/domain"
	customersdom "tallybook/internal/services/customers/domain"
	ledgerdom "tallybook/internal/services/ledger/domain"
	"tallybook/internal/services/slips/domain"
	"tallybook/internal/services/slips/repo"
)

// memTx satisfies repokit.TxRunner; the fake repo ignores the queryer
type memTx struct{ txs int }

func (m *memTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	m.txs++
	return fn(m)
}

func (m *memTx) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}

func (m *memTx) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return nil, nil
}

func (m *memTx) QueryRow(ctx context.Context, sql string, args ...any) store.Row { return nil }

// memRepo records every write the service asks for
type memRepo struct {
	slips     []domain.Slip
	panas     []tally.Credit
	timeCols  [10]int
	jodiNums  []int
	jodiValue int
	summaries []domain.Totals

	failSummary error
}

func (m *memRepo) InsertSlip(ctx context.Context, s domain.Slip) error {
	m.slips = append(m.slips, s)
	return nil
}

func (m *memRepo) SlipByID(ctx context.Context, id string) (domain.Slip, error) {
	for _, s := range m.slips {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Slip{}, perr.ErrNotFound
}

func (m *memRepo) ListSlips(ctx context.Context, q domain.ListQuery) ([]domain.Slip, error) {
	return m.slips, nil
}

func (m *memRepo) AccumulatePana(ctx context.Context, bazar string, day time.Time, credits []tally.Credit) error {
	m.panas = append(m.panas, credits...)
	return nil
}

func (m *memRepo) AccumulateTime(ctx context.Context, customerID, bazar string, day time.Time, cols [10]int) error {
	for i := range cols {
		m.timeCols[i] += cols[i]
	}
	return nil
}

func (m *memRepo) AccumulateJodi(ctx context.Context, bazar string, day time.Time, numbers []int, value int) error {
	m.jodiNums = append(m.jodiNums, numbers...)
	m.jodiValue = value
	return nil
}

func (m *memRepo) BumpSummary(ctx context.Context, customerID, bazar string, day time.Time, t domain.Totals) error {
	if m.failSummary != nil {
		return m.failSummary
	}
	m.summaries = append(m.summaries, t)
	return nil
}

func (m *memRepo) PanaLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.PanaLedgerRow, error) {
	return nil, nil
}

func (m *memRepo) TimeLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.TimeLedgerRow, error) {
	return nil, nil
}

func (m *memRepo) JodiLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.JodiLedgerRow, error) {
	return nil, nil
}

func (m *memRepo) Summary(ctx context.Context, q domain.SummaryQuery) ([]domain.SummaryRow, error) {
	return nil, nil
}

// collaborator fakes

type snapProvider struct{ snap refdata.Snapshot }

func (p snapProvider) Snapshot(ctx context.Context) (refdata.Snapshot, error) { return p.snap, nil }

type memCustomers struct{ created []string }

func (c *memCustomers) GetOrCreate(ctx context.Context, name string) (customersdom.Customer, error) {
	c.created = append(c.created, name)
	return customersdom.Customer{ID: uuid.NewString(), Name: name}, nil
}

func (c *memCustomers) List(ctx context.Context) ([]customersdom.Customer, error) { return nil, nil }

func (c *memCustomers) Rename(ctx context.Context, id, name string) (customersdom.Customer, error) {
	return customersdom.Customer{}, nil
}

type memBazars struct{}

func (memBazars) List(ctx context.Context) ([]bazarsdom.Bazar, error) { return nil, nil }

func (memBazars) Validate(ctx context.Context, code string) (bazarsdom.Bazar, error) {
	return bazarsdom.Bazar{Code: strings.ToUpper(strings.TrimSpace(code))}, nil
}

type memEntries struct{ rows []ledgerdom.Entry }

func (e *memEntries) WriteBatch(ctx context.Context, xs []ledgerdom.Entry) error {
	e.rows = append(e.rows, xs...)
	return nil
}

func (e *memEntries) Enabled() bool { return true }

type fixture struct {
	svc       *Service
	tx        *memTx
	repo      *memRepo
	customers *memCustomers
	entries   *memEntries
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		tx:        &memTx{},
		repo:      &memRepo{},
		customers: &memCustomers{},
		entries:   &memEntries{},
	}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f.repo })
	f.svc = New(f.tx, binder, domain.Ports{
		Tables:    snapProvider{snap: refdata.MustLoad()},
		Customers: f.customers,
		Bazars:    memBazars{},
		Entries:   f.entries,
	}, cfg)
	return f
}

func submitInput(text string, expected int) domain.SubmitInput {
	return domain.SubmitInput{
		Customer:      "anil",
		Bazar:         "t.o",
		EntryDate:     "2025-11-03",
		Text:          text,
		ExpectedTotal: expected,
	}
}

func TestSubmitGateRejectsMismatch(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{})

	_, err := f.svc.Submit(context.Background(), submitInput("138+347+459\n=100", 999))
	if err == nil {
		t.Fatalf("expected gate rejection, got nil")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("gate rejection code = %v, want invalid argument", perr.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "300") {
		t.Fatalf("gate error should name the computed total, got %q", err.Error())
	}
	if f.tx.txs != 0 || len(f.repo.slips) != 0 {
		t.Fatalf("gate rejection must not write: txs=%d slips=%d", f.tx.txs, len(f.repo.slips))
	}
	if len(f.customers.created) != 0 {
		t.Fatalf("gate rejection must not create customers, created %v", f.customers.created)
	}
	if len(f.entries.rows) != 0 {
		t.Fatalf("gate rejection must not log entries, got %d", len(f.entries.rows))
	}
}

func TestSubmitPersistsWholeBook(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{})

	rcpt, err := f.svc.Submit(context.Background(), submitInput("138+347+459\n=100", 300))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := uuid.Parse(rcpt.SlipID); err != nil {
		t.Fatalf("receipt slip id %q is not a uuid", rcpt.SlipID)
	}
	if rcpt.Totals.Pana != 300 || rcpt.Totals.Grand != 300 {
		t.Fatalf("receipt totals = %+v, want pana/grand 300", rcpt.Totals)
	}
	if rcpt.EntryCount != 3 {
		t.Fatalf("receipt entry count = %d, want 3", rcpt.EntryCount)
	}

	if f.tx.txs != 1 || len(f.repo.slips) != 1 {
		t.Fatalf("want one tx with one slip, got txs=%d slips=%d", f.tx.txs, len(f.repo.slips))
	}
	s := f.repo.slips[0]
	if s.Bazar != "T.O" {
		t.Fatalf("slip bazar = %q, want normalized T.O", s.Bazar)
	}
	if got := len(f.repo.panas); got != 3 {
		t.Fatalf("pana ledger credits = %d, want 3", got)
	}
	for _, c := range f.repo.panas {
		if c.Amount != 100 {
			t.Fatalf("pana credit %+v, want amount 100", c)
		}
	}
	if len(f.repo.summaries) != 1 || f.repo.summaries[0].Grand != 300 {
		t.Fatalf("summary bump = %+v, want one with grand 300", f.repo.summaries)
	}
	if len(f.entries.rows) != 3 {
		t.Fatalf("entry log rows = %d, want 3", len(f.entries.rows))
	}
	for _, r := range f.entries.rows {
		if r.Kind != ledgerdom.KindPana || r.SlipID != rcpt.SlipID {
			t.Fatalf("entry row %+v, want kind pana for slip %s", r, rcpt.SlipID)
		}
	}
}

func TestSubmitStrictRejectsDiagnostics(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{})

	in := submitInput("13x100\nutter nonsense", 100)
	in.Strict = true
	_, err := f.svc.Submit(context.Background(), in)
	if err == nil {
		t.Fatalf("strict submit should reject a slip with diagnostics")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("strict rejection code = %v", perr.CodeOf(err))
	}
	if f.tx.txs != 0 {
		t.Fatalf("strict rejection must not write, txs=%d", f.tx.txs)
	}

	// same slip without strict goes through and reports the bad line
	in.Strict = false
	rcpt, err := f.svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("non-strict submit: %v", err)
	}
	if len(rcpt.Diagnostics) != 1 {
		t.Fatalf("receipt diagnostics = %+v, want the one bad line", rcpt.Diagnostics)
	}
	if rcpt.Totals.Multi != 100 || rcpt.Totals.Grand != 100 {
		t.Fatalf("receipt totals = %+v, want multi/grand 100", rcpt.Totals)
	}
	// multiply credits both digit columns in full
	if f.repo.timeCols[1] != 100 || f.repo.timeCols[3] != 100 {
		t.Fatalf("time cols = %v, want 100 on columns 1 and 3", f.repo.timeCols)
	}
}

func TestSubmitRejectsEmptyBatch(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{})

	_, err := f.svc.Submit(context.Background(), submitInput("utter nonsense", 100))
	if err == nil {
		t.Fatalf("a slip with no entries must be rejected")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("empty batch code = %v", perr.CodeOf(err))
	}
}

func TestSubmitLineCeiling(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{MaxLines: 5})

	text := strings.Repeat("13x100\n", 6)
	_, err := f.svc.Submit(context.Background(), submitInput(text, 600))
	if err == nil {
		t.Fatalf("six lines over a five line ceiling must be rejected")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("ceiling rejection code = %v", perr.CodeOf(err))
	}
}

func TestSubmitSkipsEntryLogOnTxFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{})
	f.repo.failSummary = perr.DBf("summary write refused")

	_, err := f.svc.Submit(context.Background(), submitInput("138+347+459\n=100", 300))
	if err == nil {
		t.Fatalf("tx failure must surface")
	}
	if len(f.entries.rows) != 0 {
		t.Fatalf("entry log must not be written when the tx fails, got %d rows", len(f.entries.rows))
	}
}

func TestSubmitJodiBook(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{})

	rcpt, err := f.svc.SubmitJodi(context.Background(), submitInput("22-24-26=100", 300))
	if err != nil {
		t.Fatalf("SubmitJodi: %v", err)
	}
	if rcpt.Totals.Jodi != 300 || rcpt.Totals.Grand != 300 {
		t.Fatalf("jodi receipt totals = %+v", rcpt.Totals)
	}
	if len(f.repo.jodiNums) != 3 || f.repo.jodiValue != 100 {
		t.Fatalf("jodi ledger got numbers %v value %d", f.repo.jodiNums, f.repo.jodiValue)
	}
	if len(f.entries.rows) != 3 {
		t.Fatalf("entry log rows = %d, want 3", len(f.entries.rows))
	}
	if f.entries.rows[0].Kind != ledgerdom.KindJodi || f.entries.rows[0].Number != "22" {
		t.Fatalf("first jodi entry = %+v", f.entries.rows[0])
	}

	// mismatched expected total never reaches the book
	f2 := newFixture(t, Config{})
	_, err = f2.svc.SubmitJodi(context.Background(), submitInput("22-24-26=100", 200))
	if err == nil || f2.tx.txs != 0 {
		t.Fatalf("jodi gate: err=%v txs=%d", err, f2.tx.txs)
	}
}

func TestPreviewNeverWrites(t *testing.T) {
	t.Parallel()
	f := newFixture(t, Config{})

	p, err := f.svc.Preview(context.Background(), domain.PreviewInput{Text: "138+347+459\n=100"})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.Totals.Grand != 300 || p.EntryCount != 3 {
		t.Fatalf("preview = %+v, want grand 300 over 3 entries", p)
	}
	if f.tx.txs != 0 || len(f.customers.created) != 0 || len(f.entries.rows) != 0 {
		t.Fatalf("preview must not touch storage")
	}
}
