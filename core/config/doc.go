// Package config fills configuration structs from the environment.
//
// Fields are described with caarlos0/env tags. A .env file in the working directory is
// read once through godotenv before the first parse; variables already set in the
// process environment win over it.
//
//	type Config struct {
//		APIBaseURL string        `env:"CATALOG_API_BASE_URL" envDefault:"https://api.bitechx.com"`
//		APITimeout time.Duration `env:"CATALOG_API_TIMEOUT" envDefault:"15s"`
//		Redis      redis.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err // wraps ErrParsingConfig
//	}
//
// Nested structs without a prefix are parsed in place, so the redis settings
// (REDIS_URL, REDIS_KEY_PREFIX, ...) sit next to the CATALOG_* variables.
//
// Results are cached per struct type: the environment is parsed on the first Load of a
// type and later calls copy the cached value. MustLoad panics instead of returning the
// error and is meant for main.
package config
