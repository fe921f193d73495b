// Package repo provides postgres access for bazars
package repo

import (
	"context"

	"tallybook/internal/modkit/repokit"
	"tallybook/internal/platform/store"
	"tallybook/internal/services/bazars/domain"
)

// Repo is the minimal persistence surface for bazars
type Repo interface {
	List(ctx context.Context) ([]domain.Bazar, error)
	ByCode(ctx context.Context, code string) (domain.Bazar, error)
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

func scanBazar(row store.Row) (domain.Bazar, error) {
	var b domain.Bazar
	err := row.Scan(&b.Code, &b.Name, &b.Sort)
	return b, err
}

// List implements Repo
func (r *queries) List(ctx context.Context) ([]domain.Bazar, error) {
	return store.Many(ctx, r.q, scanBazar, `
		SELECT code, name, sort FROM bazars ORDER BY sort, code`)
}

// ByCode implements Repo
func (r *queries) ByCode(ctx context.Context, code string) (domain.Bazar, error) {
	return store.One(ctx, r.q, scanBazar, `
		SELECT code, name, sort FROM bazars WHERE code = $1`, code)
}
