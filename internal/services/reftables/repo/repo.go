// Package repo provides postgres access for reference tables
package repo

import (
	"context"
	"fmt"
	"strings"

	"tallybook/internal/core/refdata"
	"tallybook/internal/modkit/repokit"
	"tallybook/internal/platform/store"
)

// Repo is the persistence surface for the reference dataset
type Repo interface {
	PanaCount(ctx context.Context) (int, error)
	Panas(ctx context.Context) ([]int, error)
	Charts(ctx context.Context) (map[refdata.TableKind]map[int][]int, error)
	DatasetVersion(ctx context.Context) (int, error)
	ReplacePanas(ctx context.Context, nums []int) error
	ReplaceChart(ctx context.Context, kind refdata.TableKind, cols map[int][]int) error
	SetDatasetVersion(ctx context.Context, v int) error
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

// PanaCount implements Repo
func (r *queries) PanaCount(ctx context.Context) (int, error) {
	return store.Scalar[int](ctx, r.q, `SELECT count(*) FROM ref_panas`)
}

// Panas implements Repo
func (r *queries) Panas(ctx context.Context) ([]int, error) {
	return store.Many(ctx, r.q, func(row store.Row) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	}, `SELECT number FROM ref_panas ORDER BY number`)
}

// Charts implements Repo
func (r *queries) Charts(ctx context.Context) (map[refdata.TableKind]map[int][]int, error) {
	rows, err := r.q.Query(ctx, `SELECT kind, col, number FROM ref_charts ORDER BY kind, col, pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[refdata.TableKind]map[int][]int{}
	for rows.Next() {
		var kindName string
		var col, num int
		if err := rows.Scan(&kindName, &col, &num); err != nil {
			return nil, err
		}
		kind, ok := refdata.ParseKind(kindName)
		if !ok {
			return nil, fmt.Errorf("reftables: unknown chart kind %q in ref_charts", kindName)
		}
		cols, ok := out[kind]
		if !ok {
			cols = map[int][]int{}
			out[kind] = cols
		}
		cols[col] = append(cols[col], num)
	}
	return out, rows.Err()
}

// DatasetVersion implements Repo
func (r *queries) DatasetVersion(ctx context.Context) (int, error) {
	return store.Scalar[int](ctx, r.q,
		`SELECT COALESCE((SELECT value::int FROM ref_meta WHERE key = 'dataset_version'), 0)`)
}

// ReplacePanas implements Repo
func (r *queries) ReplacePanas(ctx context.Context, nums []int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ref_panas`); err != nil {
		return err
	}
	if len(nums) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO ref_panas (number) VALUES `)
	args := make([]any, 0, len(nums))
	for i, n := range nums {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "($%d)", i+1)
		args = append(args, n)
	}
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

// ReplaceChart implements Repo
func (r *queries) ReplaceChart(ctx context.Context, kind refdata.TableKind, cols map[int][]int) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ref_charts WHERE kind = $1`, kind.String()); err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO ref_charts (kind, col, pos, number) VALUES `)
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }
	first := true
	for col, nums := range cols {
		for pos, n := range nums {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString("(" + arg(kind.String()) + "," + arg(col) + "," + arg(pos) + "," + arg(n) + ")")
		}
	}
	if first {
		return nil
	}
	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

// SetDatasetVersion implements Repo
func (r *queries) SetDatasetVersion(ctx context.Context, v int) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO ref_meta (key, value) VALUES ('dataset_version', $1::text)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, v)
	return err
}
