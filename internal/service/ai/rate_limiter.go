package ai

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is requests per minute.
const DefaultRateLimit = 30

// RateLimiter paces outbound model calls. The limit can be changed at runtime
// from the settings page.
type RateLimiter struct {
	mu      sync.RWMutex
	limit   int
	limiter *rate.Limiter
}

func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{}
	rl.SetLimit(perMinute)
	return rl
}

func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = perMinute
	r.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
}

func (r *RateLimiter) GetLimit() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.limit
}

func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.RLock()
	limiter := r.limiter
	r.mu.RUnlock()
	return limiter.Wait(ctx)
}
