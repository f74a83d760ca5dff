// Package event provides a synchronous, type-keyed publish/subscribe bus.
//
// Events are routed by the bare type name of their payload. Handlers are created from
// typed functions and run in the publisher's goroutine, in subscription order:
//
//	bus := event.NewBus(event.WithLogger(log))
//
//	unsubscribe := bus.Subscribe(event.NewHandlerFunc(func(ctx context.Context, e apiclient.Unauthorized) error {
//		return handleExpiredSession(ctx, e)
//	}))
//	defer unsubscribe()
//
//	_ = bus.Publish(ctx, apiclient.Unauthorized{Path: "/products"})
//
// Handler errors are combined with errors.Join and panics are recovered as
// ErrHandlerPanic. Components that only emit events depend on the Publisher interface.
package event
