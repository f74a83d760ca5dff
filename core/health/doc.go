// Package health runs dependency checks and reports whether the client is ready.
//
// A check is any func(context.Context) error. Checks run in order; every failure is
// logged and recorded, and the report is ready only when all of them passed.
//
//	report := health.Readiness(ctx, logger,
//		health.Check{Name: "storage", Fn: storageProbe},
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//		health.Check{Name: "api", Fn: apiClient.Ping},
//	)
//	if !report.Ready() {
//		os.Exit(1)
//	}
//
// Liveness returns the trivial report used when no dependency should be consulted.
package health
