// Package service resolves and caches the reference snapshot
package service

import (
	"context"
	"sync"

	"tallybook/internal/core/refdata"
	"tallybook/internal/modkit/repokit"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/logger"
	"tallybook/internal/services/reftables/repo"
)

// Config for the reftables service
type Config struct {
	// Source picks where snapshots come from: auto, embedded, or pg
	Source string
}

// Service resolves snapshots and seeds the authoritative postgres copy.
// The first successful load is cached; concurrent parses share it.
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	cfg    Config

	mu     sync.RWMutex
	cached *refdata.Pack
}

// New constructs a reftables service. db may be nil for store-less tools;
// the embedded dataset then serves every snapshot.
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if cfg.Source == "" {
		cfg.Source = "auto"
	}
	return &Service{db: db, binder: binder, cfg: cfg}
}

// Snapshot implements domain.ProviderPort
func (s *Service) Snapshot(ctx context.Context) (refdata.Snapshot, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	pack, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = pack
	return pack, nil
}

// Invalidate drops the cached snapshot so the next call reloads
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) load(ctx context.Context) (*refdata.Pack, error) {
	switch s.cfg.Source {
	case "embedded":
		return refdata.Load()
	case "pg":
		if s.db == nil {
			return nil, perr.Unavailablef("reftables: source pg requires postgres")
		}
		return s.fromPG(ctx)
	default: // auto
		if s.db == nil {
			return refdata.Load()
		}
		n, err := s.binder.Bind(s.db).PanaCount(ctx)
		if err != nil || n == 0 {
			if err != nil {
				logger.Named("reftables").Warn().Err(err).Msg("postgres unavailable, using embedded dataset")
			}
			return refdata.Load()
		}
		return s.fromPG(ctx)
	}
}

func (s *Service) fromPG(ctx context.Context) (*refdata.Pack, error) {
	r := s.binder.Bind(s.db)

	panas, err := r.Panas(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "reftables: load panas")
	}
	charts, err := r.Charts(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "reftables: load charts")
	}
	version, err := r.DatasetVersion(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "reftables: load version")
	}

	pack, err := refdata.New(version, panas, charts)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "reftables: stored dataset is invalid")
	}
	return pack, nil
}

// Seed implements domain.SeederPort: it replaces the postgres copy with
// the embedded dataset inside one transaction
func (s *Service) Seed(ctx context.Context) error {
	if s.db == nil {
		return perr.Unavailablef("reftables: seed requires postgres")
	}
	pack, err := refdata.Load()
	if err != nil {
		return err
	}

	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.ReplacePanas(ctx, pack.PanaNumbers()); err != nil {
			return err
		}
		for _, kind := range []refdata.TableKind{refdata.SP, refdata.DP, refdata.CP} {
			cols := map[int][]int{}
			for _, c := range pack.Columns(kind) {
				cols[c] = pack.Expand(kind, c)
			}
			if err := r.ReplaceChart(ctx, kind, cols); err != nil {
				return err
			}
		}
		return r.SetDatasetVersion(ctx, pack.Version())
	})
	if err != nil {
		return perr.FromPostgres(err, "reftables: seed")
	}

	s.Invalidate()
	return nil
}
