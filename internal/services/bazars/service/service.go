// Package service contains bazar workflows
package service

import (
	"context"
	"errors"
	"strings"

	"tallybook/internal/modkit/repokit"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/services/bazars/domain"
	"tallybook/internal/services/bazars/repo"
)

// Service implements domain.ServicePort
type Service struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a bazars service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Service {
	if db == nil {
		panic("bazars.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("bazars.Service requires a non nil Repo binder")
	}
	return &Service{Repo: binder.Bind(db), binder: binder, db: db}
}

// List implements domain.ServicePort
func (s *Service) List(ctx context.Context) ([]domain.Bazar, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "bazars: list")
	}
	return out, nil
}

// Validate implements domain.ServicePort
func (s *Service) Validate(ctx context.Context, code string) (domain.Bazar, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.Bazar{}, perr.WithField(perr.Validationf("bazar code is required"), "bazar")
	}
	b, err := s.Repo.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.Bazar{}, perr.WithField(perr.Validationf("unknown bazar code %q", code), "bazar")
		}
		return domain.Bazar{}, perr.FromPostgres(err, "bazars: validate")
	}
	return b, nil
}
