package domain

import "context"

// WriterPort appends confirmed entries to the log. Implementations are
// best-effort: submissions never fail because the log is down.
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []Entry) error
	Enabled() bool
}

// AnalyticsPort reads aggregates back out of the log
type AnalyticsPort interface {
	TopNumbers(ctx context.Context, q TopQuery) ([]TopNumberRow, error)
	Activity(ctx context.Context, q ActivityQuery) ([]ActivityRow, error)
}
