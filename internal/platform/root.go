package platform

import (
	"fmt"
	"path/filepath"
)

// DefaultPath is the state file location used when none is configured:
// appdata.yaml one directory above the working directory.
const DefaultPath = "../appdata.yaml"

// ResolvePath turns the configured state file path into an absolute one,
// resolving relative paths against the current working directory.
// The result is fixed for the lifetime of the store.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path %q: %w", path, err)
	}
	return abs, nil
}
