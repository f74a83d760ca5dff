package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/catalog/core/logger"
)

// Publisher publishes events. The HTTP client depends on this interface only.
type Publisher interface {
	Publish(ctx context.Context, payload any) error
}

// Bus dispatches events synchronously to the handlers subscribed to their name,
// in the publisher's goroutine. Handler errors are joined; panics become errors.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]*subscription
	logger   *slog.Logger
	nextID   uint64
}

type subscription struct {
	id      uint64
	handler Handler
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) BusOption {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		handlers: make(map[string][]*subscription),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers h and returns a function that removes it.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscription{id: b.nextID, handler: h}
	name := h.EventName()
	b.handlers[name] = append(b.handlers[name], sub)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[name]
		for i, s := range subs {
			if s.id == sub.id {
				b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish wraps payload in an Event and runs every matching handler.
// Publishing an event nobody listens to is not an error.
func (b *Bus) Publish(ctx context.Context, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	evt := NewEvent(payload)

	b.mu.RLock()
	subs := append([]*subscription(nil), b.handlers[evt.Name]...)
	b.mu.RUnlock()

	if len(subs) == 0 {
		b.logger.DebugContext(ctx, "event has no handlers", logger.Event(evt.Name))
		return nil
	}

	var errs []error
	for _, s := range subs {
		if err := safeHandle(ctx, s.handler, evt); err != nil {
			errs = append(errs, fmt.Errorf("handler for %s failed: %w", evt.Name, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		b.logger.ErrorContext(ctx, "event handling failed",
			logger.Event(evt.Name),
			logger.ID("event_id", evt.ID),
			logger.Error(err),
		)
		return err
	}
	return nil
}

func safeHandle(ctx context.Context, h Handler, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h.Handle(ctx, evt)
}
