// Package async provides a small generic Future for running independent calls concurrently.
//
//	product := async.Async(ctx, id, products.Get)
//	categories := async.Async(ctx, 100, listCategories)
//
//	p, err := product.Await()
//	cs, err := categories.Await()
//
// WaitAll collects several futures of the same type in order and returns the first error.
// AwaitWithTimeout gives up waiting with ErrTimeout without stopping the computation.
//
// If the context is cancelled before the goroutine starts, the function is not called and
// the future resolves with the context error. Each Async call spawns exactly one goroutine,
// which exits when the function returns.
package async
