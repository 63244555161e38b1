package rest

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/vineauth/internal/logging"
	"github.com/dmitrijs2005/vineauth/internal/server/config"
)

func newRunServer(addr string) *Server {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrHTTP = addr
	cfg.ShutdownTimeout = time.Second
	return NewServer(cfg, logging.NewNopLogger(), &fakeUsers{})
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newRunServer("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := newRunServer("127.0.0.1:99999")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected listen error for invalid port")
	}
}
