package store

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithLogger_SetsOnStore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := zerolog.New(&buf) // write to buffer so we can assert output

	s := &Store{}
	if err := WithLogger(lg)(s); err != nil {
		t.Fatalf("WithLogger returned error: %v", err)
	}

	s.Log.Info().Str("seam", "pg").Msg("opened")
	if buf.Len() == 0 {
		t.Fatalf("expected logger to write to buffer, got empty output")
	}
}
