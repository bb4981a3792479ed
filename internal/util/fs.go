package util

import (
	"errors"
	"os"
)

// EnsureDir creates the directory path if it does not exist.
func EnsureDir(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}

// Exists reports whether path exists. Errors other than "not exist" count as
// existing so callers never pick a path they cannot inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

