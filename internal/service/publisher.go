package service

import (
	"context"
	"encoding/json"

	"safelink/backend/internal/broadcast"
	"safelink/backend/pkg/logger"
)

// Publisher delivers live events to connected clients. *broadcast.Hub
// satisfies it.
type Publisher interface {
	Publish(ctx context.Context, ev broadcast.Event) int
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, ev broadcast.Event) int { return 0 }

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// publish sends ev and returns the local delivery count. payload, when
// non-nil, is JSON-encoded into ev.Payload.
func publish(ctx context.Context, p Publisher, ev broadcast.Event, payload any) int {
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Warn("encode event payload failed", "module", "service", "action", "publish", "resource", "broadcast", "result", "failed", "type", ev.Type, "error", err)
			return 0
		}
		ev.Payload = raw
	}
	n := p.Publish(ctx, ev)
	logger.Debug("event published", "module", "service", "action", "publish", "resource", "broadcast", "result", "ok", "type", ev.Type, "delivered", n)
	return n
}
