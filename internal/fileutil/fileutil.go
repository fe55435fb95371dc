// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
)

// dirPermissions: rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}
