package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeServer blocks in Start until Shutdown is called, unless startErr is set.
type fakeServer struct {
	startErr    error
	shutdownErr error

	once     sync.Once
	stopped  chan struct{}
	mu       sync.Mutex
	shutdown int
}

func newFakeServer() *fakeServer {
	return &fakeServer{stopped: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdown++
	f.mu.Unlock()
	f.once.Do(func() { close(f.stopped) })
	return f.shutdownErr
}

func (f *fakeServer) shutdownCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown
}

func TestServe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("StopsOnContextCancel", func(t *testing.T) {
		api := newFakeServer()
		metrics := newFakeServer()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- serve(ctx, logger, time.Second,
				namedServer{name: "api", server: api},
				namedServer{name: "metrics", server: metrics},
			)
		}()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after cancel")
		}
		assert.Equal(t, 1, api.shutdownCalls())
		assert.Equal(t, 1, metrics.shutdownCalls())
	})

	t.Run("StartErrorShutsDownTheOthers", func(t *testing.T) {
		api := newFakeServer()
		metrics := newFakeServer()
		metrics.startErr = errors.New("address already in use")

		err := serve(context.Background(), logger, time.Second,
			namedServer{name: "api", server: api},
			namedServer{name: "metrics", server: metrics},
		)

		require.Error(t, err)
		assert.ErrorContains(t, err, "metrics server error: address already in use")
		assert.Equal(t, 1, api.shutdownCalls())
	})

	t.Run("ShutdownErrorsAreReturned", func(t *testing.T) {
		api := newFakeServer()
		api.shutdownErr = errors.New("timeout")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := serve(ctx, logger, time.Second, namedServer{name: "api", server: api})

		assert.ErrorContains(t, err, "api server shutdown: timeout")
	})
}
