package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/resilience"
)

type translator func(ctx context.Context, text string) (string, error)

func TestRun_FirstHealthyProviderWins(t *testing.T) {
	calls := map[string]int{}
	chain := resilience.NewChain[translator](resilience.BreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour}).
		Add("primary", func(ctx context.Context, text string) (string, error) {
			calls["primary"]++
			return "", errors.New("quota")
		}).
		Add("secondary", func(ctx context.Context, text string) (string, error) {
			calls["secondary"]++
			return "xin chào", nil
		})

	for i := 0; i < 3; i++ {
		out, name, err := resilience.Run(context.Background(), chain, func(ctx context.Context, tr translator) (string, error) {
			return tr(ctx, "안녕하세요")
		})
		require.NoError(t, err)
		require.Equal(t, "xin chào", out)
		require.Equal(t, "secondary", name)
	}

	// primary tripped after the first failure and was skipped afterwards
	require.Equal(t, 1, calls["primary"])
	require.Equal(t, 3, calls["secondary"])
	require.Equal(t, resilience.StateOpen, chain.Breaker("primary").State())
	require.Equal(t, []string{"primary", "secondary"}, chain.Names())
}

func TestRun_AllFailed(t *testing.T) {
	chain := resilience.NewChain[translator](resilience.BreakerConfig{}).
		Add("only", func(ctx context.Context, text string) (string, error) {
			return "", errors.New("boom")
		})

	_, _, err := resilience.Run(context.Background(), chain, func(ctx context.Context, tr translator) (string, error) {
		return tr(ctx, "x")
	})
	require.ErrorIs(t, err, resilience.ErrAllFailed)
	require.ErrorContains(t, err, "boom")
}

func TestRun_EmptyChain(t *testing.T) {
	var chain *resilience.Chain[translator]
	_, _, err := resilience.Run(context.Background(), chain, func(ctx context.Context, tr translator) (string, error) {
		return tr(ctx, "x")
	})
	require.ErrorIs(t, err, resilience.ErrAllFailed)
	require.Zero(t, chain.Len())
	require.Nil(t, chain.Breaker("x"))
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	second := false
	chain := resilience.NewChain[translator](resilience.BreakerConfig{}).
		Add("first", func(ctx context.Context, text string) (string, error) {
			cancel()
			return "", ctx.Err()
		}).
		Add("second", func(ctx context.Context, text string) (string, error) {
			second = true
			return "ok", nil
		})

	_, _, err := resilience.Run(ctx, chain, func(ctx context.Context, tr translator) (string, error) {
		return tr(ctx, "x")
	})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, second)
}
