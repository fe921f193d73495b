package store

import (
	"context"
	"testing"
	"time"
)

// fastFailPGURL points at a closed port so pings never hang
func fastFailPGURL() string {
	return "postgres://u:p@127.0.0.1:1/db?sslmode=disable"
}

func TestOpenPG_ParentAlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{
		PG: PGConfig{
			Enabled:  true,
			URL:      fastFailPGURL(),
			MaxConns: 2,
		},
	}

	s := &Store{}

	start := time.Now()
	txr, err := openPG(ctx, cfg, s)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected error due to canceled context, got nil (txr=%T)", txr)
	}
	if txr != nil {
		t.Fatalf("expected nil TxRunner on canceled context, got %T", txr)
	}
	// should return quickly: the pool is lazy and the first ping sees the
	// canceled parent
	if elapsed > time.Second {
		t.Fatalf("expected quick failure, got %v", elapsed)
	}
}
