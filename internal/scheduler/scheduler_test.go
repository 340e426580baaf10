package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeExpirer struct {
	calls atomic.Int32
	ttl   atomic.Int64
	err   error
}

func (f *fakeExpirer) ExpireStaleHolds(_ context.Context, ttl time.Duration) (int64, error) {
	f.calls.Add(1)
	f.ttl.Store(int64(ttl))
	return 2, f.err
}

func TestAddIntervalJob_Validation(t *testing.T) {
	s, err := New(nopLogger{})
	require.NoError(t, err)
	defer s.Stop()

	assert.ErrorIs(t, s.AddIntervalJob(" ", time.Second, func() {}), ErrEmptyJobName)
	assert.ErrorIs(t, s.AddIntervalJob("job", 0, func() {}), ErrInvalidInterval)
}

func TestRegisterHoldExpiry_RunsImmediatelyAndRepeats(t *testing.T) {
	s, err := New(nopLogger{})
	require.NoError(t, err)

	expirer := &fakeExpirer{}
	require.NoError(t, RegisterHoldExpiry(s, expirer, 15*time.Minute, 50*time.Millisecond))

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return expirer.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(15*time.Minute), expirer.ttl.Load())
}

func TestRegisterHoldExpiry_ErrorDoesNotStopJob(t *testing.T) {
	s, err := New(nopLogger{})
	require.NoError(t, err)

	expirer := &fakeExpirer{err: errors.New("db down")}
	require.NoError(t, RegisterHoldExpiry(s, expirer, time.Minute, 50*time.Millisecond))

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return expirer.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestStop_Idempotent(t *testing.T) {
	s, err := New(nopLogger{})
	require.NoError(t, err)
	s.Start()

	require.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}
