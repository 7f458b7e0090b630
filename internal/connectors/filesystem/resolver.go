package filesystem

import (
	"path/filepath"
	"strings"
)

// ResolvePath converts a file:// URI or a bare path to a clean local path.
// Document URIs recorded by sync use the bare form.
func ResolvePath(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
