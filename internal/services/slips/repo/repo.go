// Package repo provides postgres access for slips and their books
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tallybook/internal/core/tally"
	"tallybook/internal/modkit/repokit"
	"tallybook/internal/platform/store"
	"tallybook/internal/services/slips/domain"
)

// Repo is the persistence surface for submissions and the accumulated
// ledgers they feed. All writes happen inside the caller's transaction
type Repo interface {
	InsertSlip(ctx context.Context, s domain.Slip) error
	SlipByID(ctx context.Context, id string) (domain.Slip, error)
	ListSlips(ctx context.Context, q domain.ListQuery) ([]domain.Slip, error)

	AccumulatePana(ctx context.Context, bazar string, day time.Time, credits []tally.Credit) error
	AccumulateTime(ctx context.Context, customerID, bazar string, day time.Time, cols [10]int) error
	AccumulateJodi(ctx context.Context, bazar string, day time.Time, numbers []int, value int) error
	BumpSummary(ctx context.Context, customerID, bazar string, day time.Time, t domain.Totals) error

	PanaLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.PanaLedgerRow, error)
	TimeLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.TimeLedgerRow, error)
	JodiLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.JodiLedgerRow, error)
	Summary(ctx context.Context, q domain.SummaryQuery) ([]domain.SummaryRow, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const slipColumns = `
	s.id::text, s.customer_id::text, c.name, s.bazar, s.entry_date, s.text,
	s.entry_count, s.pana_total, s.type_total, s.time_total, s.multi_total,
	s.direct_total, s.jodi_total, s.grand_total, s.source, s.created_at`

func scanSlip(row store.Row) (domain.Slip, error) {
	var s domain.Slip
	err := row.Scan(
		&s.ID, &s.CustomerID, &s.Customer, &s.Bazar, &s.EntryDate, &s.Text,
		&s.EntryCount, &s.Totals.Pana, &s.Totals.Type, &s.Totals.Time, &s.Totals.Multi,
		&s.Totals.Direct, &s.Totals.Jodi, &s.Totals.Grand, &s.Source, &s.CreatedAt,
	)
	return s, err
}

// InsertSlip implements Repo
func (r *queries) InsertSlip(ctx context.Context, s domain.Slip) error {
	return store.ExecOne(ctx, r.q, `
		INSERT INTO slips (
			id, customer_id, bazar, entry_date, text,
			entry_count, pana_total, type_total, time_total, multi_total,
			direct_total, jodi_total, grand_total, source, created_at
		) VALUES (
			$1::uuid, $2::uuid, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15
		)`,
		s.ID, s.CustomerID, s.Bazar, s.EntryDate, s.Text,
		s.EntryCount, s.Totals.Pana, s.Totals.Type, s.Totals.Time, s.Totals.Multi,
		s.Totals.Direct, s.Totals.Jodi, s.Totals.Grand, s.Source, s.CreatedAt,
	)
}

// SlipByID implements Repo
func (r *queries) SlipByID(ctx context.Context, id string) (domain.Slip, error) {
	return store.One(ctx, r.q, scanSlip, `
		SELECT `+slipColumns+`
		FROM slips s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.id = $1::uuid`, id)
}

// ListSlips implements Repo; pages by (created_at, id) keyset
func (r *queries) ListSlips(ctx context.Context, q domain.ListQuery) ([]domain.Slip, error) {
	args := make([]any, 0, 6)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + slipColumns + `
		FROM slips s
		JOIN customers c ON c.id = s.customer_id
		WHERE 1=1`)
	if q.Bazar != "" {
		fmt.Fprintf(&sb, " AND s.bazar = %s", arg(q.Bazar))
	}
	if q.Customer != "" {
		fmt.Fprintf(&sb, " AND lower(c.name) = lower(%s)", arg(q.Customer))
	}
	if !q.EntryDate.IsZero() {
		fmt.Fprintf(&sb, " AND s.entry_date = %s", arg(q.EntryDate))
	}
	if q.AfterID != "" {
		fmt.Fprintf(&sb, " AND (s.created_at, s.id) > (%s, %s::uuid)", arg(q.AfterCreatedAt), arg(q.AfterID))
	}
	fmt.Fprintf(&sb, " ORDER BY s.created_at, s.id LIMIT %s", arg(q.Limit))

	return store.Many(ctx, r.q, scanSlip, sb.String(), args...)
}

// AccumulatePana implements Repo; one upsert per distinct number
func (r *queries) AccumulatePana(ctx context.Context, bazar string, day time.Time, credits []tally.Credit) error {
	if len(credits) == 0 {
		return nil
	}
	args := make([]any, 0, len(credits)*4)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO pana_ledger (bazar, entry_date, number, value) VALUES ")
	for i, c := range credits {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%s, %s, %s, %s)", arg(bazar), arg(day), arg(c.Number), arg(c.Amount))
	}
	sb.WriteString(`
		ON CONFLICT (bazar, entry_date, number)
		DO UPDATE SET value = pana_ledger.value + EXCLUDED.value, updated_at = now()`)

	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

// AccumulateTime implements Repo; adds onto one customer's 0-9 row
func (r *queries) AccumulateTime(ctx context.Context, customerID, bazar string, day time.Time, cols [10]int) error {
	if cols == ([10]int{}) {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO time_ledger (
			customer_id, bazar, entry_date,
			col_0, col_1, col_2, col_3, col_4, col_5, col_6, col_7, col_8, col_9
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (customer_id, bazar, entry_date) DO UPDATE SET
			col_0 = time_ledger.col_0 + EXCLUDED.col_0,
			col_1 = time_ledger.col_1 + EXCLUDED.col_1,
			col_2 = time_ledger.col_2 + EXCLUDED.col_2,
			col_3 = time_ledger.col_3 + EXCLUDED.col_3,
			col_4 = time_ledger.col_4 + EXCLUDED.col_4,
			col_5 = time_ledger.col_5 + EXCLUDED.col_5,
			col_6 = time_ledger.col_6 + EXCLUDED.col_6,
			col_7 = time_ledger.col_7 + EXCLUDED.col_7,
			col_8 = time_ledger.col_8 + EXCLUDED.col_8,
			col_9 = time_ledger.col_9 + EXCLUDED.col_9,
			updated_at = now()`,
		customerID, bazar, day,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6], cols[7], cols[8], cols[9],
	)
	return err
}

// AccumulateJodi implements Repo; every number takes the full value
func (r *queries) AccumulateJodi(ctx context.Context, bazar string, day time.Time, numbers []int, value int) error {
	if len(numbers) == 0 {
		return nil
	}
	args := make([]any, 0, len(numbers)*4)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO jodi_ledger (bazar, entry_date, number, value) VALUES ")
	for i, n := range numbers {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%s, %s, %s, %s)", arg(bazar), arg(day), arg(n), arg(value))
	}
	sb.WriteString(`
		ON CONFLICT (bazar, entry_date, number)
		DO UPDATE SET value = jodi_ledger.value + EXCLUDED.value, updated_at = now()`)

	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

// BumpSummary implements Repo; folds confirmed totals into the cache
func (r *queries) BumpSummary(ctx context.Context, customerID, bazar string, day time.Time, t domain.Totals) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO customer_summary (
			customer_id, bazar, entry_date,
			pana_total, type_total, time_total, multi_total, direct_total, jodi_total, grand_total
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (customer_id, bazar, entry_date) DO UPDATE SET
			pana_total   = customer_summary.pana_total + EXCLUDED.pana_total,
			type_total   = customer_summary.type_total + EXCLUDED.type_total,
			time_total   = customer_summary.time_total + EXCLUDED.time_total,
			multi_total  = customer_summary.multi_total + EXCLUDED.multi_total,
			direct_total = customer_summary.direct_total + EXCLUDED.direct_total,
			jodi_total   = customer_summary.jodi_total + EXCLUDED.jodi_total,
			grand_total  = customer_summary.grand_total + EXCLUDED.grand_total,
			updated_at   = now()`,
		customerID, bazar, day,
		t.Pana, t.Type, t.Time, t.Multi, t.Direct, t.Jodi, t.Grand,
	)
	return err
}

// PanaLedger implements Repo
func (r *queries) PanaLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.PanaLedgerRow, error) {
	scan := func(row store.Row) (domain.PanaLedgerRow, error) {
		var x domain.PanaLedgerRow
		err := row.Scan(&x.Number, &x.Value)
		return x, err
	}
	return store.Many(ctx, r.q, scan, `
		SELECT number, value FROM pana_ledger
		WHERE bazar = $1 AND entry_date = $2
		ORDER BY number`, q.Bazar, q.Day)
}

// TimeLedger implements Repo
func (r *queries) TimeLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.TimeLedgerRow, error) {
	scan := func(row store.Row) (domain.TimeLedgerRow, error) {
		var x domain.TimeLedgerRow
		err := row.Scan(
			&x.Customer,
			&x.Cols[0], &x.Cols[1], &x.Cols[2], &x.Cols[3], &x.Cols[4],
			&x.Cols[5], &x.Cols[6], &x.Cols[7], &x.Cols[8], &x.Cols[9],
			&x.Total,
		)
		return x, err
	}
	return store.Many(ctx, r.q, scan, `
		SELECT c.name,
			t.col_0, t.col_1, t.col_2, t.col_3, t.col_4,
			t.col_5, t.col_6, t.col_7, t.col_8, t.col_9,
			t.col_0 + t.col_1 + t.col_2 + t.col_3 + t.col_4 +
			t.col_5 + t.col_6 + t.col_7 + t.col_8 + t.col_9 AS total
		FROM time_ledger t
		JOIN customers c ON c.id = t.customer_id
		WHERE t.bazar = $1 AND t.entry_date = $2
		ORDER BY lower(c.name)`, q.Bazar, q.Day)
}

// JodiLedger implements Repo
func (r *queries) JodiLedger(ctx context.Context, q domain.LedgerQuery) ([]domain.JodiLedgerRow, error) {
	scan := func(row store.Row) (domain.JodiLedgerRow, error) {
		var x domain.JodiLedgerRow
		err := row.Scan(&x.Number, &x.Value)
		return x, err
	}
	return store.Many(ctx, r.q, scan, `
		SELECT number, value FROM jodi_ledger
		WHERE bazar = $1 AND entry_date = $2
		ORDER BY number`, q.Bazar, q.Day)
}

// Summary implements Repo
func (r *queries) Summary(ctx context.Context, q domain.SummaryQuery) ([]domain.SummaryRow, error) {
	args := make([]any, 0, 4)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT c.name, s.bazar, s.entry_date,
			s.pana_total, s.type_total, s.time_total, s.multi_total,
			s.direct_total, s.jodi_total, s.grand_total
		FROM customer_summary s
		JOIN customers c ON c.id = s.customer_id
		WHERE 1=1`)
	if q.Bazar != "" {
		fmt.Fprintf(&sb, " AND s.bazar = %s", arg(q.Bazar))
	}
	if q.Customer != "" {
		fmt.Fprintf(&sb, " AND lower(c.name) = lower(%s)", arg(q.Customer))
	}
	if !q.Since.IsZero() {
		fmt.Fprintf(&sb, " AND s.entry_date >= %s", arg(q.Since))
	}
	if !q.Until.IsZero() {
		fmt.Fprintf(&sb, " AND s.entry_date <= %s", arg(q.Until))
	}
	sb.WriteString(" ORDER BY s.entry_date, s.bazar, lower(c.name)")

	scan := func(row store.Row) (domain.SummaryRow, error) {
		var x domain.SummaryRow
		err := row.Scan(
			&x.Customer, &x.Bazar, &x.Day,
			&x.Pana, &x.Type, &x.Time, &x.Multi,
			&x.Direct, &x.Jodi, &x.Grand,
		)
		return x, err
	}
	return store.Many(ctx, r.q, scan, sb.String(), args...)
}
