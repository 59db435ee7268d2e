package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Output locations
const (
	// DefaultResultDir holds generated result files
	DefaultResultDir = "target"

	// DefaultResultFile is where the text-file output channel writes
	DefaultResultFile = "target/result.txt"
)

// ErrInvalidPath is returned for result paths that cannot name a file
var ErrInvalidPath = errors.New("invalid result path")

// ResultDir returns the directory that must exist before writing path
func ResultDir(path string) string {
	return filepath.Dir(path)
}

// ValidateResultPath checks that path names a file rather than a directory
func ValidateResultPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("%w: %q is a directory", ErrInvalidPath, path)
	}
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return fmt.Errorf("%w: %q has no file name", ErrInvalidPath, path)
	}
	return nil
}
