package listener

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kenelite/go-singleton/internal/observability"
)

func TestStartAndShutdown(t *testing.T) {
	s := NewServer("127.0.0.1:0", http.NotFoundHandler(), observability.NewNop())
	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// give ListenAndServe a moment to bind
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
