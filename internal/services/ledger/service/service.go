// Package service provides the entry log service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tallybook/internal/modkit/scope"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/logger"
	"tallybook/internal/services/ledger/domain"
	"tallybook/internal/services/ledger/repo"
)

// Config for the ledger service
type Config struct {
	HardLimit int
}

// Service implements domain.WriterPort and domain.AnalyticsPort against
// the clickhouse repo. Storage may be nil when clickhouse is disabled:
// writes become no-ops and analytics report unavailable.
type Service struct {
	Storage *repo.CH
	Cfg     Config
}

// New constructs an entry log service; storage may be nil
func New(storage *repo.CH, cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 50
	}
	return &Service{Storage: storage, Cfg: cfg}
}

// Enabled implements domain.WriterPort
func (s *Service) Enabled() bool { return s.Storage != nil }

// WriteBatch implements domain.WriterPort. Missing ids and timestamps
// are filled here; the entry source comes off the request scope.
func (s *Service) WriteBatch(ctx context.Context, xs []domain.Entry) error {
	if s.Storage == nil || len(xs) == 0 {
		return nil
	}

	src := scope.SourceOf(ctx)
	now := time.Now().UTC()
	for i := range xs {
		if xs[i].EntryID == "" {
			xs[i].EntryID = uuid.NewString()
		}
		if xs[i].Source == "" {
			xs[i].Source = src
		}
		if xs[i].CreatedAt.IsZero() {
			xs[i].CreatedAt = now
		}
	}

	if err := s.Storage.WriteBatch(ctx, xs); err != nil {
		// the log is advisory; callers already committed the books
		logger.C(ctx).Warn().Err(err).Int("entries", len(xs)).Msg("entry log write failed")
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "ledger: write batch")
	}
	return nil
}

// TopNumbers implements domain.AnalyticsPort
func (s *Service) TopNumbers(ctx context.Context, q domain.TopQuery) ([]domain.TopNumberRow, error) {
	if s.Storage == nil {
		return nil, perr.Unavailablef("entry log is not configured")
	}
	if q.Limit <= 0 || q.Limit > s.Cfg.HardLimit {
		q.Limit = s.Cfg.HardLimit
	}
	return s.Storage.TopNumbers(ctx, q)
}

// Activity implements domain.AnalyticsPort
func (s *Service) Activity(ctx context.Context, q domain.ActivityQuery) ([]domain.ActivityRow, error) {
	if s.Storage == nil {
		return nil, perr.Unavailablef("entry log is not configured")
	}
	return s.Storage.Activity(ctx, q)
}

// EnsureSchema creates the log table; used by the seed tool
func (s *Service) EnsureSchema(ctx context.Context) error {
	if s.Storage == nil {
		return perr.Unavailablef("entry log is not configured")
	}
	return s.Storage.EnsureSchema(ctx)
}
