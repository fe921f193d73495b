// Package repo provides clickhouse access for the entry log
package repo

import (
	"context"
	"strings"

	"tallybook/internal/platform/store"
	"tallybook/internal/services/ledger/domain"
)

// entriesDDL is applied by the seed tool when clickhouse is configured
const entriesDDL = `
CREATE TABLE IF NOT EXISTS entries (
	entry_id    UUID,
	slip_id     UUID,
	customer    String,
	bazar       LowCardinality(String),
	entry_date  Date,
	kind        LowCardinality(String),
	number      String,
	value       Int64,
	source_line String,
	source      LowCardinality(String),
	created_at  DateTime DEFAULT now()
)
ENGINE = MergeTree
ORDER BY (bazar, entry_date, kind, number)`

var entryColumns = []string{
	"entry_id", "slip_id", "customer", "bazar", "entry_date",
	"kind", "number", "value", "source_line", "source", "created_at",
}

// CH is the clickhouse-backed entry log repository
type CH struct{ db store.Clickhouse }

// NewCH wraps the clickhouse seam; db must not be nil
func NewCH(db store.Clickhouse) *CH { return &CH{db: db} }

// EnsureSchema creates the entries table when it does not exist yet
func (r *CH) EnsureSchema(ctx context.Context) error {
	return r.db.Exec(ctx, entriesDDL)
}

// WriteBatch appends entries through one prepared batch
func (r *CH) WriteBatch(ctx context.Context, xs []domain.Entry) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, e := range xs {
		rows = append(rows, []any{
			e.EntryID, e.SlipID, e.Customer, e.Bazar, e.EntryDate,
			e.Kind, e.Number, int64(e.Value), e.SourceLine, e.Source, e.CreatedAt,
		})
	}
	return r.db.Insert(ctx, "entries", entryColumns, rows)
}

// TopNumbers aggregates the busiest numbers in a window
func (r *CH) TopNumbers(ctx context.Context, q domain.TopQuery) ([]domain.TopNumberRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return "?" }

	sb.WriteString(`
		SELECT number, toInt64(count()) AS entries, toInt64(sum(value)) AS staked
		FROM entries
		WHERE bazar = ` + arg(q.Bazar) + `
			AND entry_date >= ` + arg(q.Since) + ` AND entry_date < ` + arg(q.Until) + `
	`)
	if q.Kind != "" {
		sb.WriteString("  AND kind = " + arg(q.Kind) + "\n")
	}
	sb.WriteString("GROUP BY number ORDER BY staked DESC, number ASC LIMIT " + arg(q.Limit))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TopNumberRow
	for rows.Next() {
		var row domain.TopNumberRow
		if err := rows.Scan(&row.Number, &row.Entries, &row.Staked); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Activity aggregates per customer traffic by day and kind
func (r *CH) Activity(ctx context.Context, q domain.ActivityQuery) ([]domain.ActivityRow, error) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return "?" }

	sb.WriteString(`
		SELECT entry_date AS day, customer, kind, toInt64(count()) AS entries, toInt64(sum(value)) AS staked
		FROM entries
		WHERE entry_date >= ` + arg(q.Since) + ` AND entry_date < ` + arg(q.Until) + `
	`)
	if q.Bazar != "" {
		sb.WriteString("  AND bazar = " + arg(q.Bazar) + "\n")
	}
	if q.Customer != "" {
		sb.WriteString("  AND customer = " + arg(q.Customer) + "\n")
	}
	sb.WriteString("GROUP BY day, customer, kind ORDER BY day, customer, kind")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ActivityRow
	for rows.Next() {
		var row domain.ActivityRow
		if err := rows.Scan(&row.Day, &row.Customer, &row.Kind, &row.Entries, &row.Staked); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
