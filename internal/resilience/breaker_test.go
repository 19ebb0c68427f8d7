package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(maxFailures int) (*Breaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := NewBreaker(BreakerConfig{Name: "test", MaxFailures: maxFailures, ResetTimeout: time.Minute})
	b.now = clock.now
	return b, clock
}

func fail(context.Context) error { return errUpstream }
func ok(context.Context) error   { return nil }

func TestNewBreaker_Defaults(t *testing.T) {
	b := NewBreaker(BreakerConfig{Name: "x"})
	require.Equal(t, 5, b.maxFailures)
	require.Equal(t, 30*time.Second, b.resetTimeout)
	require.Equal(t, 1, b.halfOpenMax)
	require.Equal(t, StateClosed, b.State())
	require.Equal(t, "x", b.Name())
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b, _ := newTestBreaker(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, b.Do(ctx, fail), errUpstream)
	}
	require.Equal(t, StateOpen, b.State())

	called := false
	err := b.Do(ctx, func(context.Context) error { called = true; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.False(t, called)
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b, _ := newTestBreaker(3)
	ctx := context.Background()

	_ = b.Do(ctx, fail)
	_ = b.Do(ctx, fail)
	require.NoError(t, b.Do(ctx, ok))
	_ = b.Do(ctx, fail)
	_ = b.Do(ctx, fail)
	require.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	b, clock := newTestBreaker(1)
	ctx := context.Background()

	_ = b.Do(ctx, fail)
	require.Equal(t, StateOpen, b.State())

	clock.advance(time.Minute)
	require.Equal(t, StateHalfOpen, b.State())

	// failed probe re-opens
	require.ErrorIs(t, b.Do(ctx, fail), errUpstream)
	require.Equal(t, StateOpen, b.State())

	clock.advance(time.Minute)
	require.NoError(t, b.Do(ctx, ok))
	require.Equal(t, StateClosed, b.State())
}

func TestBreaker_CancelledCallerDoesNotTrip(t *testing.T) {
	b, _ := newTestBreaker(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Do(ctx, func(ctx context.Context) error { return ctx.Err() })
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StateClosed, b.State())
}

func TestBreaker_Reset(t *testing.T) {
	b, _ := newTestBreaker(1)
	_ = b.Do(context.Background(), fail)
	require.Equal(t, StateOpen, b.State())
	b.Reset()
	require.Equal(t, StateClosed, b.State())
}

func TestState_String(t *testing.T) {
	require.Equal(t, "closed", StateClosed.String())
	require.Equal(t, "open", StateOpen.String())
	require.Equal(t, "half-open", StateHalfOpen.String())
	require.Equal(t, "unknown", State(9).String())
}
