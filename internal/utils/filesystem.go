package utils

import (
	"fmt"
	"os"
)

// EnsurePath ensures path exists as a directory, creating it and any missing
// parents if necessary. It is idempotent and safe to call before every write.
func EnsurePath(path string) error {
	fileInfo, err := os.Stat(path)
	// No error means the path exists
	if err == nil {
		if !fileInfo.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		// Return any error that's not "file not found" (like permission issues)
		return fmt.Errorf("error checking %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}
