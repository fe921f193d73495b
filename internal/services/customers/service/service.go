// Package service contains customer workflows
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tallybook/internal/modkit/repokit"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/services/customers/domain"
	"tallybook/internal/services/customers/repo"
)

// Service implements domain.ServicePort
type Service struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a customers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Service {
	if db == nil {
		panic("customers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("customers.Service requires a non nil Repo binder")
	}
	return &Service{Repo: binder.Bind(db), binder: binder, db: db}
}

// GetOrCreate implements domain.ServicePort
func (s *Service) GetOrCreate(ctx context.Context, name string) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, perr.WithField(perr.Validationf("customer name is required"), "customer")
	}

	c, err := s.Repo.ByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, perr.ErrNotFound) {
		return domain.Customer{}, perr.FromPostgres(err, "customers: lookup")
	}

	c = domain.Customer{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}
	if err := s.Repo.Insert(ctx, c); err != nil {
		// lost a create race; the winner's row is the customer
		if perr.IsDuplicateKey(err) {
			return s.Repo.ByName(ctx, name)
		}
		return domain.Customer{}, perr.FromPostgres(err, "customers: create")
	}
	return c, nil
}

// List implements domain.ServicePort
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "customers: list")
	}
	return out, nil
}

// Rename implements domain.ServicePort
func (s *Service) Rename(ctx context.Context, id, name string) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, perr.WithField(perr.Validationf("customer name is required"), "name")
	}
	if err := s.Repo.Rename(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, perr.ErrNotFound):
			return domain.Customer{}, perr.NotFoundf("customer %s not found", id)
		case perr.IsDuplicateKey(err):
			return domain.Customer{}, perr.DuplicateKeyf("customer %q already exists", name)
		}
		return domain.Customer{}, perr.FromPostgres(err, "customers: rename")
	}
	return s.Repo.ByID(ctx, id)
}
