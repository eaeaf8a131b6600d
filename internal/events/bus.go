package events

import (
	"context"
	"log/slog"
	"sync"
)

// subscription is one subscriber channel and the events it accepts.
type subscription struct {
	ch     chan Event
	accept func(Event) bool
}

// Bus fans events out to subscribers and optionally records them.
// Delivery never blocks: a full subscriber misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   []*subscription
	log    *EventLog // activity persistence (may be nil)
	logger *slog.Logger
	closed bool
}

// NewBus creates a new event bus.
// The EventLog is optional - pass nil to disable persistence.
func NewBus(log *EventLog, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		log:    log,
		logger: logger.With("component", "events"),
	}
}

// Publish records e and delivers it to every matching subscriber.
// Publishing on a closed bus is a no-op.
func (b *Bus) Publish(ctx context.Context, e Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return nil
	}
	targets := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.accept(e) {
			targets = append(targets, s)
		}
	}
	// Sends happen under the read lock so Close cannot close a channel mid-send.
	for _, s := range targets {
		select {
		case s.ch <- e:
		default:
			b.logger.Warn("subscriber channel full, dropping event",
				"type", e.EventType(),
				"entity_type", e.EntityType(),
				"entity_id", e.EntityID())
		}
	}
	b.mu.RUnlock()

	if b.log != nil {
		if _, err := b.log.Append(ctx, e); err != nil {
			// Delivery already happened; a lost activity row is only logged.
			b.logger.Error("failed to persist event", "type", e.EventType(), "error", err)
		}
	}
	return nil
}

func (b *Bus) subscribe(bufferSize int, accept func(Event) bool) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, bufferSize)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, &subscription{ch: ch, accept: accept})
	return ch
}

// subscribeTypes returns a channel for events of the given types.
func (b *Bus) subscribeTypes(bufferSize int, eventTypes ...string) <-chan Event {
	wanted := make(map[string]struct{}, len(eventTypes))
	for _, t := range eventTypes {
		wanted[t] = struct{}{}
	}
	return b.subscribe(bufferSize, func(e Event) bool {
		_, ok := wanted[e.EventType()]
		return ok
	})
}

// SubscribeAll returns a channel for all events.
func (b *Bus) SubscribeAll(bufferSize int) <-chan Event {
	return b.subscribe(bufferSize, func(Event) bool { return true })
}

// subscribeEntity returns events about one entity, e.g. ("series", 7).
func (b *Bus) subscribeEntity(entityType string, entityID int64, bufferSize int) <-chan Event {
	return b.subscribe(bufferSize, func(e Event) bool {
		return e.EntityType() == entityType && e.EntityID() == entityID
	})
}

// Unsubscribe removes and closes a subscription channel.
func (b *Bus) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.ch == ch {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			close(s.ch)
			return
		}
	}
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, s := range b.subs {
		close(s.ch)
	}
	b.subs = nil
	return nil
}
