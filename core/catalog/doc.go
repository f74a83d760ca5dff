// Package catalog holds the domain model of the product catalog API and one thin
// facade per resource.
//
// Facades are stateless: each method builds a path, query or body, performs exactly one
// request through a Requester and returns the decoded payload or the Requester's error
// unchanged.
//
//	products := catalog.NewProductsAPI(client)
//	page, err := products.List(ctx, 0, catalog.DefaultProductLimit)
//
// The package also owns the client-side forms. LoginForm and ProductForm sanitize and
// validate input before anything reaches the network.
package catalog
