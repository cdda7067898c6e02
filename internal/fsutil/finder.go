// Package fsutil provides file system discovery helpers.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByName recursively searches root for all regular files whose base
// name equals name, skipping hidden directories. filepath.WalkDir visits
// entries lexically, so the result order is deterministic.
func FindFilesByName(root string, name string) ([]string, error) {
	if name == "" {
		panic("fsutil: name must not be empty")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == name {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
