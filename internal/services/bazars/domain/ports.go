package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context) ([]Bazar, error)
	// Validate resolves a slip's bazar code, case-insensitively
	Validate(ctx context.Context, code string) (Bazar, error)
}
