package app_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildgridgo/internal/app"
)

func TestNewApp_RejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{RootPath: "./src", LogLevel: "verbose"})
	require.NoError(t, err)

	_, err = app.NewApp(io.Discard, io.Discard, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "verbose"`)
}

func TestNewApp_LogLevelIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{RootPath: "./src", LogLevel: "WARN"})
	require.NoError(t, err)

	a, err := app.NewApp(io.Discard, io.Discard, cfg)
	require.NoError(t, err)
	require.NotNil(t, a)
}
