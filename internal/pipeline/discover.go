package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yi-working/csvconcat/internal/naming"
)

// Discover lists inputDir (non-recursively) and returns the joined paths
// that contain pattern anywhere in the string, skipping directories. Paths
// come back in lexicographic order of entry name for deterministic output.
func Discover(inputDir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputDir, err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(inputDir, entry.Name())
		if !naming.Matches(path, pattern) {
			continue
		}
		if isDir(entry, path) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// isDir reports whether entry is a directory, following symlinks.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
