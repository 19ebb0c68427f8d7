package ai_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/service/ai"
)

func TestRateLimiter(t *testing.T) {
	rl := ai.NewRateLimiter(5)
	require.Equal(t, 5, rl.GetLimit())

	rl.SetLimit(20)
	require.Equal(t, 20, rl.GetLimit())

	rl.SetLimit(0)
	require.Equal(t, ai.DefaultRateLimit, rl.GetLimit())

	require.NoError(t, rl.Wait(context.Background()))
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	rl := ai.NewRateLimiter(1)
	require.NoError(t, rl.Wait(context.Background()))

	// burst of one is spent; the next token is a minute away
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, rl.Wait(ctx))
}
