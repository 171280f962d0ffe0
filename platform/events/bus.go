package events

import (
	"context"
	"sync"

	"lead_intake_backend/platform/logger"

	"go.uber.org/multierr"
)

// InMemoryBus is an in-process Bus implementation. Handlers for an event
// run in subscription order; a failing handler never blocks the others.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the named event type.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish dispatches the event to its handlers on a new goroutine.
// Handler errors are logged and dropped.
func (b *InMemoryBus) Publish(ctx context.Context, event Event) {
	go func() {
		if err := b.dispatch(ctx, event); err != nil {
			b.log.Warn("event handler failed",
				"event", event.EventName(), "error", err.Error())
		}
	}()
}

// PublishSync dispatches the event and waits for all handlers.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	return b.dispatch(ctx, event)
}

func (b *InMemoryBus) dispatch(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventName()]
	b.mu.RUnlock()

	var errs error
	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Compile-time check that InMemoryBus implements Bus.
var _ Bus = (*InMemoryBus)(nil)
