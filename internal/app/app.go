package app

import (
	"io"
	"log/slog"

	"github.com/vk/buildgridgo/internal/manifest"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	loader *manifest.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW, errW io.Writer, config *Config) (*App, error) {
	logger, err := newLogger(config.LogLevel, config.LogFormat, errW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: config,
		loader: manifest.NewLoader(),
	}, nil
}
