// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files into
// the process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags. Each configuration type
// is parsed once per process; later calls are served from a cache.
//
// # Usage
//
//	type Config struct {
//		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Use LoadEnv to read additional .env files before the first Load, and
// Reset in tests to clear the cache.
package config
