package events

import (
	"context"
	"sync"
)

// Handler processes a published event.
type Handler func(context.Context, Event) error

// Dispatcher allows event publication and subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler Handler)
}

// dispatcher invokes handlers synchronously, in subscription order.
type dispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewDispatcher creates a synchronous in-memory dispatcher.
func NewDispatcher() Dispatcher {
	return &dispatcher{handlers: make(map[EventType][]Handler)}
}

// Publish invokes every handler subscribed to the event's type. A failing
// handler does not stop the remaining ones.
func (d *dispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	subscribed := make([]Handler, len(d.handlers[event.Type]))
	copy(subscribed, d.handlers[event.Type])
	d.mu.RUnlock()

	for _, handler := range subscribed {
		_ = handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *dispatcher) Subscribe(eventType EventType, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}
