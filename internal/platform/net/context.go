// Package net holds transport-neutral request context helpers
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyCustomer ctxKey = "customer"

// WithRequest annotates ctx with the request id (stored where chi's
// middleware looks for it) and the acting customer code
func WithRequest(ctx context.Context, reqID, customer string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if customer != "" {
		ctx = context.WithValue(ctx, keyCustomer, customer)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Customer returns the acting customer code if present
func Customer(ctx context.Context) string {
	if v, ok := ctx.Value(keyCustomer).(string); ok {
		return v
	}
	return ""
}
