package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidManifest(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "BUILD.hcl")
	err := os.WriteFile(filePath, []byte(`target "broken" {`), 0o600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	runErr := run(out, out, []string{tempDir})

	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to parse manifest")
}

func TestRun_PrintsResolvedGraph(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	libDir := filepath.Join(tempDir, "lib")
	require.NoError(t, os.MkdirAll(libDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "BUILD.hcl"), []byte(`
target "lib" {
  type    = "static_library"
  sources = ["a.cc"]
}
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "BUILD.hcl"), []byte(`
target "app" {
  type = "executable"
  deps = ["lib"]
}
`), 0o600))

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	err := run(out, errW, []string{tempDir})

	require.NoError(t, err)
	require.Contains(t, out.String(), "//app (executable)")
	require.Contains(t, out.String(), "//lib/lib (static_library)")
	require.Contains(t, out.String(), "source //lib/a.cc")
	require.Contains(t, out.String(), "deps   lib")
}
