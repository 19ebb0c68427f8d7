package broadcast

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"safelink/backend/internal/observe"
	"safelink/backend/pkg/logger"
)

const sendBuffer = 32

// Relay fans events out to other server instances.
type Relay interface {
	Publish(ctx context.Context, payload []byte) error
	// Listen blocks until ctx is done, calling handle for every payload.
	Listen(ctx context.Context, handle func([]byte)) error
	Close() error
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Subscription]struct{}

	nodeID  string
	relay   Relay
	metrics *observe.Metrics

	originPatterns []string
}

type Option func(*Hub)

func WithRelay(r Relay) Option {
	return func(h *Hub) { h.relay = r }
}

func WithMetrics(m *observe.Metrics) Option {
	return func(h *Hub) { h.metrics = m }
}

// WithOriginPatterns allows cross-origin WebSocket clients (host patterns as
// accepted by websocket.AcceptOptions).
func WithOriginPatterns(patterns ...string) Option {
	return func(h *Hub) { h.originPatterns = patterns }
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients: make(map[*Subscription]struct{}),
		nodeID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscription is one connected client.
type Subscription struct {
	Role Role
	Lang string
	Name string

	hub  *Hub
	ch   chan Frame
	once sync.Once
}

// C delivers frames until Close.
func (s *Subscription) C() <-chan Frame {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.clients, s)
		close(s.ch)
		s.hub.mu.Unlock()
		s.hub.metrics.AddConnection(context.Background(), string(s.Role), -1)
	})
}

func (h *Hub) Subscribe(role Role, lang, name string) *Subscription {
	s := &Subscription{Role: role, Lang: lang, Name: name, hub: h, ch: make(chan Frame, sendBuffer)}
	h.mu.Lock()
	h.clients[s] = struct{}{}
	h.mu.Unlock()
	h.metrics.AddConnection(context.Background(), string(role), 1)
	return s
}

// ClientCount returns connected clients for role, or all when role is "".
func (h *Hub) ClientCount(role Role) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if role == "" {
		return len(h.clients)
	}
	n := 0
	for s := range h.clients {
		if s.Role == role {
			n++
		}
	}
	return n
}

// Publish delivers ev locally and forwards it to the relay when one is set.
// It returns the number of local clients that received it.
func (h *Hub) Publish(ctx context.Context, ev Event) int {
	if ev.SentAt.IsZero() {
		ev.SentAt = time.Now().UTC()
	}
	ev.Origin = h.nodeID
	n := h.deliver(ctx, ev)

	if h.relay != nil {
		data, err := json.Marshal(ev)
		if err == nil {
			err = h.relay.Publish(ctx, data)
		}
		if err != nil {
			logger.Warn("broadcast relay publish failed", "module", "broadcast", "action", "publish", "type", ev.Type, "error", err)
		}
	}
	return n
}

// Run consumes the relay until ctx is done. Without a relay it just waits.
func (h *Hub) Run(ctx context.Context) error {
	if h.relay == nil {
		<-ctx.Done()
		return nil
	}
	return h.relay.Listen(ctx, func(payload []byte) {
		h.receive(ctx, payload)
	})
}

func (h *Hub) receive(ctx context.Context, payload []byte) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		logger.Warn("broadcast relay payload invalid", "module", "broadcast", "action", "receive", "error", err)
		return
	}
	if ev.Origin == h.nodeID {
		return
	}
	h.deliver(ctx, ev)
}

// deliver never blocks: a client whose buffer is full misses the frame.
func (h *Hub) deliver(ctx context.Context, ev Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := map[Role]int{}
	for s := range h.clients {
		if !ev.reaches(s.Role) {
			continue
		}
		select {
		case s.ch <- frameFor(ev, s.Role, s.Lang):
			delivered[s.Role]++
		default:
			logger.Warn("broadcast client too slow", "module", "broadcast", "action", "deliver", "role", s.Role, "name", s.Name)
		}
	}

	total := 0
	for role, n := range delivered {
		h.metrics.RecordDelivery(ctx, string(role), n)
		total += n
	}
	return total
}
