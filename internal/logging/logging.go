package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"roofsite/internal/config"
)

// Setup builds the root logger from the log section of the configuration.
// The root carries only the service name; packages add one component each.
func Setup(cfg config.LogConfig) zerolog.Logger {
	return New(cfg, os.Stdout)
}

func New(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	w := out
	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", "roofsite").
		Logger()
}

// Component derives a sub-logger tagged with the given component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
