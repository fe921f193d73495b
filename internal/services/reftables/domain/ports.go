// Package domain defines the contracts for the reference table provider
package domain

import (
	"context"

	"tallybook/internal/core/refdata"
)

// ProviderPort hands out the shared reference snapshot parses run against
type ProviderPort interface {
	Snapshot(ctx context.Context) (refdata.Snapshot, error)
}

// SeederPort pushes the embedded dataset into postgres
type SeederPort interface {
	Seed(ctx context.Context) error
}
