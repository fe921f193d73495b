package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// GetOrCreate resolves a customer by name, creating it on first use.
	// Matching is case-insensitive; the stored spelling is the first seen.
	GetOrCreate(ctx context.Context, name string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Rename(ctx context.Context, id, name string) (Customer, error)
}
