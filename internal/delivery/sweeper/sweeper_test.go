package sweeper

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessions counts sweeps; every other method is unused.
type fakeSessions struct {
	sweeps atomic.Int32
	err    error
}

func (f *fakeSessions) ListActive(context.Context, int64) ([]*entity.Session, error) { return nil, nil }
func (f *fakeSessions) Revoke(context.Context, int64, int64) error                   { return nil }
func (f *fakeSessions) RevokeAll(context.Context, int64) (int, error)                { return 0, nil }
func (f *fakeSessions) EnforceLimit(context.Context, int64, int) (int, error)        { return 0, nil }

func (f *fakeSessions) SweepExpired(context.Context) (int, error) {
	f.sweeps.Add(1)

	return 0, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveInBackground(s *sweeper) <-chan error {
	result := make(chan error, 1)
	go func() { result <- s.Serve(context.Background()) }()

	return result
}

func TestSweeper_SweepsUntilStopped(t *testing.T) {
	sessions := &fakeSessions{err: errors.New("storage down")}
	s := newSweeper(sessions, discardLogger(), &config.SessionSweepConfig{Enabled: true, Interval: 5 * time.Millisecond})

	result := serveInBackground(s)

	assert.Eventually(t, func() bool { return sessions.sweeps.Load() >= 3 }, time.Second, time.Millisecond,
		"failures do not stop the loop")

	require.NoError(t, s.stop(context.Background()))
	require.NoError(t, s.stop(context.Background()), "stop is idempotent")

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_Disabled(t *testing.T) {
	sessions := &fakeSessions{}
	s := newSweeper(sessions, discardLogger(), &config.SessionSweepConfig{Enabled: false})

	require.NoError(t, s.Serve(context.Background()))
	assert.Zero(t, sessions.sweeps.Load())
}
