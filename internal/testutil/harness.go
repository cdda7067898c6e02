// Package testutil provides shared helpers for tests that need a manifest
// tree on disk.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/buildgridgo/internal/manifest"
)

// WriteTree writes files (slash-relative path to content) under a fresh
// temporary root and returns the root path.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// LoadModel writes files under a temporary root, loads them as manifests,
// and returns the model together with the root path.
func LoadModel(t *testing.T, files map[string]string) (*manifest.Model, string) {
	t.Helper()

	root := WriteTree(t, files)
	model, err := manifest.NewLoader().Load(context.Background(), root)
	require.NoError(t, err)
	return model, root
}
