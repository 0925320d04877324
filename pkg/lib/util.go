package lib

import (
	"path/filepath"

	"github.com/google/uuid"
)

// NewID generates a UUID version 4 string (RFC 4122)
func NewID() string {
	return uuid.NewString()
}

// BaseName returns the executable file name of path, the part that is
// compared against process names.
func BaseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
