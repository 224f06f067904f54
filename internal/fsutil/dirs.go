// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrCreateDir reports that a directory could not be created.
var ErrCreateDir = errors.New("cannot create directory")

// EnsureDir makes sure the directory at path exists, creating any missing
// parents. It succeeds when the directory is already present.
func EnsureDir(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrCreateDir)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreateDir, path, err)
	}
	return nil
}
