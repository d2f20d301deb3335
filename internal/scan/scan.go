// Package scan builds analysis batches from the filesystem.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sortd/internal/batch"
)

// Directory walks root and returns a descriptor for every regular file,
// in deterministic walk order. Hidden files (dot-prefixed) are skipped, as
// are files that disappear or cannot be stat'd mid-walk — a batch is built
// from whatever is readable, never aborted by a single bad entry.
func Directory(root string) ([]batch.File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var files []batch.File
	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectory: skip its subtree, keep walking.
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			if entry.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		fileInfo, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return nil
		}
		files = append(files, batch.File{
			Name: name,
			Path: path,
			Size: fileInfo.Size(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", root, walkErr)
	}
	return files, nil
}
