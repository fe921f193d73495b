// Package repo provides postgres access for customers
package repo

import (
	"context"

	"tallybook/internal/modkit/repokit"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/store"
	"tallybook/internal/services/customers/domain"
)

// Repo is the minimal persistence surface for customers
type Repo interface {
	Insert(ctx context.Context, c domain.Customer) error
	ByName(ctx context.Context, name string) (domain.Customer, error)
	ByID(ctx context.Context, id string) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Rename(ctx context.Context, id, name string) error
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

func scanCustomer(row store.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}

// Insert implements Repo
func (r *queries) Insert(ctx context.Context, c domain.Customer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO customers (id, name, created_at) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.CreatedAt)
	return err
}

// ByName implements Repo; the lookup is case-insensitive
func (r *queries) ByName(ctx context.Context, name string) (domain.Customer, error) {
	return store.One(ctx, r.q, scanCustomer, `
		SELECT id::text, name, created_at FROM customers WHERE lower(name) = lower($1)`, name)
}

// ByID implements Repo
func (r *queries) ByID(ctx context.Context, id string) (domain.Customer, error) {
	return store.One(ctx, r.q, scanCustomer, `
		SELECT id::text, name, created_at FROM customers WHERE id = $1::uuid`, id)
}

// List implements Repo
func (r *queries) List(ctx context.Context) ([]domain.Customer, error) {
	return store.Many(ctx, r.q, scanCustomer, `
		SELECT id::text, name, created_at FROM customers ORDER BY lower(name)`)
}

// Rename implements Repo
func (r *queries) Rename(ctx context.Context, id, name string) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE customers SET name = $2 WHERE id = $1::uuid`, id, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.ErrNotFound
	}
	return nil
}
