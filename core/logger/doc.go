// Package logger provides structured logging on top of the standard log/slog package:
// a small factory with environment presets and a set of nil-safe attribute helpers.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/catalog/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("catalog"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("request completed",
//		logger.Component("apiclient"),
//		logger.Method("GET"),
//		logger.Path("/products"),
//		logger.StatusCode(200),
//		logger.Latency(time.Since(start)),
//	)
//
// # Presets
//
//	logger.New(logger.WithDevelopment("catalog")) // text, debug
//	logger.New(logger.WithProduction("catalog"))  // JSON, info
//
// # Attribute Helpers
//
// Helpers such as Error, ID and RequestID return an empty slog.Attr for nil or empty input,
// which slog drops from the output:
//
//	log.Error("fetch failed", logger.Error(err), logger.ID("product_id", id))
package logger
