// Package service implements the slip submission pipeline: clean the
// text, parse it against the reference snapshot, total it, gate it on
// the caller's expected total, and persist slip plus ledgers in one
// transaction. The entry log write happens after commit and never
// fails a submission.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tallybook/internal/core/jodi"
	"tallybook/internal/core/slipparse"
	"tallybook/internal/core/sliptext"
	"tallybook/internal/core/tally"
	"tallybook/internal/modkit/repokit"
	"tallybook/internal/modkit/scope"
	perr "tallybook/internal/platform/errors"
	tim "tallybook/internal/platform/time"
	ledgerdom "tallybook/internal/services/ledger/domain"
	"tallybook/internal/services/slips/domain"
	"tallybook/internal/services/slips/repo"
)

// Config for the slips service
type Config struct {
	// MaxLines caps how many cleaned lines one submission may carry
	MaxLines int
	// PageSize is the default and ceiling for history listing
	PageSize int
}

// Service implements domain.SlipPort and domain.LedgerReadPort
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	cfg    Config
	ports  domain.Ports
}

// New constructs a slips service wired to its collaborators
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], ports domain.Ports, cfg Config) *Service {
	if db == nil {
		panic("slips.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("slips.Service requires a non nil Repo binder")
	}
	if ports.Tables == nil || ports.Customers == nil || ports.Bazars == nil || ports.Entries == nil {
		panic("slips.Service requires Tables, Customers, Bazars and Entries ports")
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = 1000
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	return &Service{db: db, binder: binder, cfg: cfg, ports: ports}
}

// Preview implements domain.SlipPort. Pure: parse and total, no writes
func (s *Service) Preview(ctx context.Context, in domain.PreviewInput) (domain.Preview, error) {
	text, lines, err := s.admit(in.Text)
	if err != nil {
		return domain.Preview{}, err
	}
	snap, err := s.ports.Tables.Snapshot(ctx)
	if err != nil {
		return domain.Preview{}, err
	}
	batch, res := tally.ParseAndCalculate(text, snap)
	return domain.Preview{
		Lines:       lines,
		EntryCount:  batch.EntryCount(),
		Totals:      totalsOf(res),
		PanaCredits: res.PanaCredits,
		TimeCredits: res.TimeCredits,
		Diagnostics: batch.Diagnostics,
	}, nil
}

// Submit implements domain.SlipPort. Nothing is written unless the
// computed grand total matches the caller's expected total
func (s *Service) Submit(ctx context.Context, in domain.SubmitInput) (domain.Receipt, error) {
	day, err := tim.ParseDay(in.EntryDate)
	if err != nil {
		return domain.Receipt{}, perr.WithField(perr.Validationf("entry_date must be a date like 2026-08-25"), "entry_date")
	}
	bz, err := s.ports.Bazars.Validate(ctx, in.Bazar)
	if err != nil {
		return domain.Receipt{}, err
	}
	text, _, err := s.admit(in.Text)
	if err != nil {
		return domain.Receipt{}, err
	}
	snap, err := s.ports.Tables.Snapshot(ctx)
	if err != nil {
		return domain.Receipt{}, err
	}

	batch, res := tally.ParseAndCalculate(text, snap)
	if batch.Empty() {
		return domain.Receipt{}, perr.InvalidArgf("slip has no recognizable entries")
	}
	if in.Strict && len(batch.Diagnostics) > 0 {
		return domain.Receipt{}, perr.InvalidArgf(
			"strict submit rejected: %d line(s) failed to parse", len(batch.Diagnostics))
	}
	if res.Grand != in.ExpectedTotal {
		return domain.Receipt{}, perr.InvalidArgf(
			"expected total %d does not match computed total %d", in.ExpectedTotal, res.Grand)
	}

	// Past the gate; creating the customer is the first write
	cust, err := s.ports.Customers.GetOrCreate(ctx, in.Customer)
	if err != nil {
		return domain.Receipt{}, err
	}

	slip := domain.Slip{
		ID:         uuid.NewString(),
		CustomerID: cust.ID,
		Customer:   cust.Name,
		Bazar:      bz.Code,
		EntryDate:  day,
		Text:       text,
		EntryCount: batch.EntryCount(),
		Totals:     totalsOf(res),
		Source:     scope.SourceOf(ctx),
		CreatedAt:  time.Now().UTC(),
	}
	cols := timeColumns(res.TimeCredits)

	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		rq := s.binder.Bind(q)
		if err := rq.InsertSlip(ctx, slip); err != nil {
			return err
		}
		if err := rq.AccumulatePana(ctx, slip.Bazar, day, res.PanaCredits); err != nil {
			return err
		}
		if err := rq.AccumulateTime(ctx, cust.ID, slip.Bazar, day, cols); err != nil {
			return err
		}
		return rq.BumpSummary(ctx, cust.ID, slip.Bazar, day, slip.Totals)
	})
	if err != nil {
		return domain.Receipt{}, perr.FromPostgresf(err, "slips: persist %s", slip.ID)
	}

	s.logEntries(ctx, slip, batch, nil)

	return domain.Receipt{
		SlipID:      slip.ID,
		EntryCount:  slip.EntryCount,
		Totals:      slip.Totals,
		Diagnostics: batch.Diagnostics,
	}, nil
}

// PreviewJodi implements domain.SlipPort
func (s *Service) PreviewJodi(ctx context.Context, in domain.PreviewInput) (domain.JodiPreview, error) {
	e, err := jodi.Parse(in.Text)
	if err != nil {
		return domain.JodiPreview{}, perr.WithField(perr.Validationf("%v", err), "text")
	}
	return domain.JodiPreview{Numbers: e.Numbers, Value: e.Value, Total: e.Total()}, nil
}

// SubmitJodi implements domain.SlipPort; same gate, jodi book
func (s *Service) SubmitJodi(ctx context.Context, in domain.SubmitInput) (domain.Receipt, error) {
	day, err := tim.ParseDay(in.EntryDate)
	if err != nil {
		return domain.Receipt{}, perr.WithField(perr.Validationf("entry_date must be a date like 2026-08-25"), "entry_date")
	}
	bz, err := s.ports.Bazars.Validate(ctx, in.Bazar)
	if err != nil {
		return domain.Receipt{}, err
	}
	e, err := jodi.Parse(in.Text)
	if err != nil {
		return domain.Receipt{}, perr.WithField(perr.Validationf("%v", err), "text")
	}
	if e.Total() != in.ExpectedTotal {
		return domain.Receipt{}, perr.InvalidArgf(
			"expected total %d does not match computed total %d", in.ExpectedTotal, e.Total())
	}

	cust, err := s.ports.Customers.GetOrCreate(ctx, in.Customer)
	if err != nil {
		return domain.Receipt{}, err
	}

	slip := domain.Slip{
		ID:         uuid.NewString(),
		CustomerID: cust.ID,
		Customer:   cust.Name,
		Bazar:      bz.Code,
		EntryDate:  day,
		Text:       sliptext.Clean(in.Text),
		EntryCount: len(e.Numbers),
		Totals:     domain.Totals{Jodi: e.Total(), Grand: e.Total()},
		Source:     scope.SourceOf(ctx),
		CreatedAt:  time.Now().UTC(),
	}

	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		rq := s.binder.Bind(q)
		if err := rq.InsertSlip(ctx, slip); err != nil {
			return err
		}
		if err := rq.AccumulateJodi(ctx, slip.Bazar, day, e.Numbers, e.Value); err != nil {
			return err
		}
		return rq.BumpSummary(ctx, cust.ID, slip.Bazar, day, slip.Totals)
	})
	if err != nil {
		return domain.Receipt{}, perr.FromPostgresf(err, "slips: persist %s", slip.ID)
	}

	s.logEntries(ctx, slip, nil, e)

	return domain.Receipt{SlipID: slip.ID, EntryCount: slip.EntryCount, Totals: slip.Totals}, nil
}

// Get implements domain.SlipPort
func (s *Service) Get(ctx context.Context, id string) (domain.Slip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Slip{}, perr.WithField(perr.Validationf("slip id must be a uuid"), "id")
	}
	row, err := s.binder.Bind(s.db).SlipByID(ctx, id)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.Slip{}, perr.NotFoundf("slip %s not found", id)
		}
		return domain.Slip{}, perr.FromPostgres(err, "slips: get")
	}
	return row, nil
}

// List implements domain.SlipPort
func (s *Service) List(ctx context.Context, q domain.ListQuery) ([]domain.Slip, error) {
	if q.Limit <= 0 || q.Limit > s.cfg.PageSize {
		q.Limit = s.cfg.PageSize
	}
	if q.Bazar != "" {
		bz, err := s.ports.Bazars.Validate(ctx, q.Bazar)
		if err != nil {
			return nil, err
		}
		q.Bazar = bz.Code
	}
	out, err := s.binder.Bind(s.db).ListSlips(ctx, q)
	if err != nil {
		return nil, perr.FromPostgres(err, "slips: list")
	}
	return out, nil
}

// PanaLedger implements domain.LedgerReadPort
func (s *Service) PanaLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.PanaLedgerRow, error) {
	if err := s.normalizeBook(ctx, &q); err != nil {
		return nil, err
	}
	out, err := s.binder.Bind(s.db).PanaLedger(ctx, q)
	if err != nil {
		return nil, perr.FromPostgres(err, "slips: pana ledger")
	}
	return out, nil
}

// TimeLedger implements domain.LedgerReadPort
func (s *Service) TimeLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.TimeLedgerRow, error) {
	if err := s.normalizeBook(ctx, &q); err != nil {
		return nil, err
	}
	out, err := s.binder.Bind(s.db).TimeLedger(ctx, q)
	if err != nil {
		return nil, perr.FromPostgres(err, "slips: time ledger")
	}
	return out, nil
}

// JodiLedger implements domain.LedgerReadPort
func (s *Service) JodiLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.JodiLedgerRow, error) {
	if err := s.normalizeBook(ctx, &q); err != nil {
		return nil, err
	}
	out, err := s.binder.Bind(s.db).JodiLedger(ctx, q)
	if err != nil {
		return nil, perr.FromPostgres(err, "slips: jodi ledger")
	}
	return out, nil
}

// Summary implements domain.LedgerReadPort
func (s *Service) Summary(ctx context.Context, q domain.SummaryQuery) ([]domain.SummaryRow, error) {
	if q.Bazar != "" {
		bz, err := s.ports.Bazars.Validate(ctx, q.Bazar)
		if err != nil {
			return nil, err
		}
		q.Bazar = bz.Code
	}
	out, err := s.binder.Bind(s.db).Summary(ctx, q)
	if err != nil {
		return nil, perr.FromPostgres(err, "slips: summary")
	}
	return out, nil
}

// admit cleans raw text and enforces the line ceiling
func (s *Service) admit(raw string) (string, int, error) {
	text := sliptext.Clean(raw)
	lines := sliptext.CountLines(text)
	if lines == 0 {
		return "", 0, perr.WithField(perr.Validationf("slip text is empty"), "text")
	}
	if lines > s.cfg.MaxLines {
		return "", 0, perr.WithField(
			perr.Validationf("slip has %d lines, the limit is %d", lines, s.cfg.MaxLines), "text")
	}
	return text, lines, nil
}

// normalizeBook validates the bazar and the day of a ledger read
func (s *Service) normalizeBook(ctx context.Context, q *domain.LedgerQuery) error {
	bz, err := s.ports.Bazars.Validate(ctx, q.Bazar)
	if err != nil {
		return err
	}
	q.Bazar = bz.Code
	if q.Day.IsZero() {
		return perr.WithField(perr.Validationf("date is required"), "date")
	}
	q.Day = tim.Day(q.Day)
	return nil
}

// logEntries appends the expanded rows to the entry log after commit.
// Failures are logged by the writer and swallowed here: the slip is
// already durable
func (s *Service) logEntries(ctx context.Context, slip domain.Slip, batch *slipparse.Batch, je *jodi.Entry) {
	if !s.ports.Entries.Enabled() {
		return
	}
	var xs []ledgerdom.Entry
	add := func(kind, number string, value int) {
		xs = append(xs, ledgerdom.Entry{
			SlipID:    slip.ID,
			Customer:  slip.Customer,
			Bazar:     slip.Bazar,
			EntryDate: slip.EntryDate,
			Kind:      kind,
			Number:    number,
			Value:     value,
		})
	}
	if batch != nil {
		for _, e := range batch.Panas {
			add(ledgerdom.KindPana, fmt.Sprintf("%03d", e.Number), e.Value)
		}
		for _, e := range batch.Types {
			for _, n := range e.Expanded {
				add(ledgerdom.KindType, fmt.Sprintf("%03d", n), e.Value)
			}
		}
		for _, e := range batch.Times {
			for _, c := range e.Columns {
				add(ledgerdom.KindTime, strconv.Itoa(c), e.Value)
			}
		}
		for _, e := range batch.Multis {
			add(ledgerdom.KindMulti, strconv.Itoa(e.Tens), e.Value)
			add(ledgerdom.KindMulti, strconv.Itoa(e.Units), e.Value)
		}
		for _, e := range batch.Directs {
			add(ledgerdom.KindDirect, fmt.Sprintf("%03d", e.Number), e.Value)
		}
	}
	if je != nil {
		for _, n := range je.Numbers {
			add(ledgerdom.KindJodi, fmt.Sprintf("%02d", n), je.Value)
		}
	}
	_ = s.ports.Entries.WriteBatch(ctx, xs)
}

func totalsOf(res *tally.Result) domain.Totals {
	return domain.Totals{
		Pana:   res.Pana,
		Type:   res.Type,
		Time:   res.Time,
		Multi:  res.Multi,
		Direct: res.Direct,
		Grand:  res.Grand,
	}
}

// timeColumns folds time credits into the ten ledger columns
func timeColumns(credits []tally.Credit) [10]int {
	var cols [10]int
	for _, c := range credits {
		if c.Number >= 0 && c.Number <= 9 {
			cols[c.Number] = c.Amount
		}
	}
	return cols
}
