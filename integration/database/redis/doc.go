// Package redis connects to Redis and provides a Redis-backed persist.Storage, so the
// catalog session can be shared between machines or survive a wiped state directory.
//
// Connect validates the URL (redis:// or rediss://), pings with exponential backoff and
// returns a ready client:
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0", RetryAttempts: 3, RetryInterval: time.Second}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	storage := redis.NewStorage(client, cfg.KeyPrefix)
//	bridge := persist.NewBridge(st, storage)
//
// WithTTL makes the stored session expire after a period without writes.
//
// Healthcheck wraps a ping for readiness checks. Errors are exposed as sentinels
// (ErrEmptyConnectionURL, ErrFailedToParseRedisConnString, ErrUnsupportedScheme,
// ErrRedisNotReady, ErrHealthcheckFailed) that wrap the underlying go-redis error.
package redis
