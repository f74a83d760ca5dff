package event

import (
	"context"
	"fmt"
)

// HandlerFunc is a type-safe function signature for processing events of type T.
type HandlerFunc[T any] func(context.Context, T) error

// Handler processes events of one name.
type Handler interface {
	EventName() string
	Handle(ctx context.Context, evt Event) error
}

// NewHandlerFunc wraps fn as a Handler for events whose payload type is T.
func NewHandlerFunc[T any](fn HandlerFunc[T]) Handler {
	var zero T
	return &typedHandler[T]{name: nameOf(zero), fn: fn}
}

type typedHandler[T any] struct {
	name string
	fn   HandlerFunc[T]
}

func (h *typedHandler[T]) EventName() string {
	return h.name
}

func (h *typedHandler[T]) Handle(ctx context.Context, evt Event) error {
	payload, ok := evt.Payload.(T)
	if !ok {
		if p, isPtr := evt.Payload.(*T); isPtr && p != nil {
			payload = *p
		} else {
			return fmt.Errorf("unexpected payload type %T for handler %s", evt.Payload, h.name)
		}
	}
	return h.fn(ctx, payload)
}
