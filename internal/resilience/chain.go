package resilience

import (
	"context"
	"errors"
	"fmt"

	"safelink/backend/pkg/logger"
)

var ErrAllFailed = errors.New("all providers failed")

type link[T any] struct {
	name    string
	value   T
	breaker *Breaker
}

// Chain holds providers of one kind in priority order, each behind its own
// breaker. The zero Chain has no providers and always fails with ErrAllFailed.
type Chain[T any] struct {
	links []link[T]
	cfg   BreakerConfig
}

func NewChain[T any](cfg BreakerConfig) *Chain[T] {
	return &Chain[T]{cfg: cfg}
}

// Add appends a provider after the ones already registered.
func (c *Chain[T]) Add(name string, value T) *Chain[T] {
	cfg := c.cfg
	cfg.Name = name
	c.links = append(c.links, link[T]{name: name, value: value, breaker: NewBreaker(cfg)})
	return c
}

func (c *Chain[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.links)
}

// Names lists providers in priority order.
func (c *Chain[T]) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.links))
	for _, l := range c.links {
		names = append(names, l.name)
	}
	return names
}

// Breaker returns the breaker guarding the named provider, or nil.
func (c *Chain[T]) Breaker(name string) *Breaker {
	if c == nil {
		return nil
	}
	for _, l := range c.links {
		if l.name == name {
			return l.breaker
		}
	}
	return nil
}

// Run tries each provider in order and returns the first success together
// with the name of the provider that produced it.
func Run[T any, R any](ctx context.Context, c *Chain[T], fn func(ctx context.Context, provider T) (R, error)) (R, string, error) {
	var (
		zero    R
		lastErr error
	)
	if c == nil || len(c.links) == 0 {
		return zero, "", fmt.Errorf("%w: no providers configured", ErrAllFailed)
	}

	for i := range c.links {
		l := &c.links[i]
		var result R
		err := l.breaker.Do(ctx, func(ctx context.Context) error {
			var innerErr error
			result, innerErr = fn(ctx, l.value)
			return innerErr
		})
		if err == nil {
			return result, l.name, nil
		}
		if ctx.Err() != nil {
			return zero, "", ctx.Err()
		}
		lastErr = err
		if errors.Is(err, ErrCircuitOpen) {
			logger.Debug("provider skipped", "module", "resilience", "provider", l.name, "result", "circuit_open")
			continue
		}
		logger.Warn("provider failed", "module", "resilience", "provider", l.name, "result", "failed", "error", err)
	}
	return zero, "", fmt.Errorf("%w: %v", ErrAllFailed, lastErr)
}
