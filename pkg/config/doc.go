// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for tag-driven parsing and
// github.com/joho/godotenv for optional .env files.
//
//   - Load parses once per configuration type and caches the copy for the
//     lifetime of the process.
//   - Parse reads the environment every time and accepts options such as a
//     variable prefix or an explicit environment map.
//   - LoadEnv reads extra .env files; ResetCache clears the Load cache in tests.
//
// # Usage
//
//	type Config struct {
//		DisableDiscovery bool   `env:"FORMVALIDATION_DISABLE_DISCOVERY" envDefault:"false"`
//		LogLevel         string `env:"FORMVALIDATION_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig, so callers can match them
// with errors.Is while keeping the underlying env error in the chain.
package config
