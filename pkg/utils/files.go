package utils

import (
	"os"
	"path/filepath"
)

// ReadSource resolves relPath to an absolute path and returns the program
// text it contains, along with the resolved path for diagnostics.
func ReadSource(relPath string) (source string, fullPath string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", "", err
	}

	return string(data), fullPath, nil
}
