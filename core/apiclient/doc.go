// Package apiclient is the HTTP adapter for the catalog REST API.
//
// Every request is JSON in, JSON out. Before sending, the client asks its TokenSource for
// the persisted session token and attaches it as a bearer credential. Failures are
// normalized into *Error values:
//
//   - ErrUnauthorized: the API answered 401. The client also publishes an Unauthorized
//     event; it never clears storage or navigates itself, the composition root does.
//   - ErrRemote: any other non-2xx answer. Message comes from the body's "message" or
//     "error" field, falling back to MessageRemote.
//   - ErrNetwork: no response at all (MessageNetwork).
//   - ErrUnexpected: the request could not be built or the response decoded.
//
// Usage:
//
//	client, err := apiclient.New("https://api.example.com",
//		apiclient.WithTokenSource(bridge),
//		apiclient.WithPublisher(bus),
//		apiclient.WithLogger(log),
//	)
//
//	var products []catalog.Product
//	err = client.Get(ctx, "/products?offset=0&limit=10", &products)
//	if errors.Is(err, apiclient.ErrNetwork) {
//		// show connectivity message
//	}
package apiclient
