// Package host validates the local environment before mutating actions run.
package host

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CheckMountDir verifies that the configured host mount directory exists and
// is a directory. A missing bind source is fatal to the whole run: the
// runtime would otherwise silently create an empty directory, masking a
// mis-typed --detect-dir.
func CheckMountDir(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("host mount directory does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("host mount directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("host mount path is not a directory: %s", path)
	}
	return nil
}
