package app

import (
	"errors"
	"path/filepath"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// RootPath is the directory walked for BUILD.hcl manifests.
	RootPath string

	// SourceRoot is the host directory mapped to "//". Defaults to RootPath.
	SourceRoot string

	LogFormat string
	LogLevel  string

	// CacheSize bounds the path resolution memo; zero disables it.
	CacheSize int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RootPath == "" {
		return nil, errors.New("RootPath is a required configuration field and cannot be empty")
	}

	if cfg.SourceRoot == "" {
		cfg.SourceRoot = cfg.RootPath
	}
	abs, err := filepath.Abs(cfg.SourceRoot)
	if err != nil {
		return nil, err
	}
	cfg.SourceRoot = abs

	return &cfg, nil
}
