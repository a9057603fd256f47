// Package log configures the process-wide slog logger used by library
// code. Command output intended for the user goes through the CLI
// directly, not through here.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Config controls handler selection for the default logger.
type Config struct {
	Level  slog.Level
	Format string // "text" or "json"
	Output io.Writer
}

// DefaultConfig returns the settings used when nothing is configured:
// text output on stderr at info level.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// Init installs the default slog logger from cfg.
func Init(cfg Config) {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ForComponent returns a logger tagged with the component name.
func ForComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
