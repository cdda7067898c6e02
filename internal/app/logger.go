package app

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger creates a new slog.Logger instance for this App. It does not set
// the global logger, allowing for isolated logger instances. The level is
// parsed with slog.Level.UnmarshalText, so "warn" and "WARN" both work and an
// unknown level is an error rather than a silent default.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler), nil
}
