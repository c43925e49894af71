package telemetry

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls further behind than this starts losing messages.
const subscriberBuffer = 100

// Hub fans telemetry messages out to subscribers.
//
// Publishing never blocks on a slow subscriber: when a subscriber's buffer is
// full the message is dropped for that subscriber and counted. The hub is
// safe for concurrent use; it sits outside the single-threaded device core.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*subscriber
	closed      bool
	log         zerolog.Logger
}

type subscriber struct {
	id      string
	ch      chan Message
	dropped atomic.Int64
	once    sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// NewHub creates an empty hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]*subscriber),
		log:         log.With().Str("component", "telemetry").Logger(),
	}
}

// Subscribe registers a new subscriber. The returned channel yields published
// messages until ctx is cancelled or the hub is closed, after which it is
// closed. The returned cancel function unregisters early.
func (h *Hub) Subscribe(ctx context.Context) (<-chan Message, func()) {
	sub := &subscriber{
		id: uuid.NewString(),
		ch: make(chan Message, subscriberBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sub.close()
		return sub.ch, func() {}
	}
	h.subscribers[sub.id] = sub
	h.mu.Unlock()

	cancel := func() { h.unsubscribe(sub.id) }

	stop := context.AfterFunc(ctx, cancel)
	return sub.ch, func() {
		stop()
		cancel()
	}
}

// Publish delivers a message to every current subscriber.
func (h *Hub) Publish(msg Message) {
	if msg == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for _, sub := range h.subscribers {
		select {
		case sub.ch <- msg:
		default:
			h.log.Warn().
				Str("subscriber", sub.id).
				Str("object", msg.ObjectID()).
				Int64("dropped", sub.dropped.Add(1)).
				Msg("subscriber too slow, dropping message")
		}
	}
}

// Sink returns Publish as a plain function, suitable for constructing a
// device context.
func (h *Hub) Sink() func(Message) {
	return h.Publish
}

// Close shuts the hub down and closes all subscriber channels.
// Publishing after Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subscribers {
		sub.close()
		delete(h.subscribers, id)
	}
}

func (h *Hub) unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sub, ok := h.subscribers[id]
	if !ok {
		return
	}
	delete(h.subscribers, id)
	sub.close()
}
