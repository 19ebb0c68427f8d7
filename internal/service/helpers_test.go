package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"safelink/backend/internal/broadcast"
	"safelink/backend/internal/service/ai"
)

// fakeProvider answers every prompt with reply, or fails with err.
type fakeProvider struct {
	name  string
	reply func(systemPrompt, content string) string
	err   error
	calls atomic.Int32

	mu      sync.Mutex
	prompts []string
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Test(ctx context.Context) (string, error) { return "ok", p.err }

func (p *fakeProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	p.calls.Add(1)
	p.mu.Lock()
	p.prompts = append(p.prompts, systemPrompt)
	p.mu.Unlock()
	if p.err != nil {
		return "", p.err
	}
	return p.reply(systemPrompt, content), nil
}

func (p *fakeProvider) lastPrompt() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.prompts) == 0 {
		return ""
	}
	return p.prompts[len(p.prompts)-1]
}

var errUpstreamDown = errors.New("upstream down")

// staticAIConfig always reports the same provider config.
type staticAIConfig struct {
	cfg ai.Config
	ok  bool
}

func (s staticAIConfig) AIConfig(ctx context.Context) (ai.Config, bool) { return s.cfg, s.ok }

// factoryFor returns a provider factory that hands out providers by name.
func factoryFor(providers map[string]ai.Provider) func(cfg ai.Config) (ai.Provider, error) {
	return func(cfg ai.Config) (ai.Provider, error) {
		if p, ok := providers[cfg.Provider]; ok {
			return p, nil
		}
		return nil, ai.ErrInvalidProvider
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []broadcast.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, ev broadcast.Event) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return 1
}

func (p *recordingPublisher) Events() []broadcast.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]broadcast.Event, len(p.events))
	copy(out, p.events)
	return out
}
