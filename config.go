package formvalidation

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/formvalidation/pkg/config"
	"github.com/dmitrymomot/formvalidation/pkg/logger"
)

// Config holds process-wide binding defaults read from the environment.
type Config struct {
	DisableDiscovery bool   `env:"FORMVALIDATION_DISABLE_DISCOVERY" envDefault:"false"`
	StrictLookup     bool   `env:"FORMVALIDATION_STRICT_LOOKUP" envDefault:"false"`
	RelaxedOrdering  bool   `env:"FORMVALIDATION_RELAXED_ORDERING" envDefault:"false"`
	LogLevel         string `env:"FORMVALIDATION_LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"FORMVALIDATION_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment (and an optional .env file).
// The result is cached for the process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks c and reports problems wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// NewLogger builds the logger described by c, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("formvalidation")),
	), nil
}
