package storage

import (
	"fmt"
	"path"
	"strings"
)

// ChartsDir is the directory rendered artifacts are stored under.
const ChartsDir = "charts"

// ChartPath returns the storage path of a chart artifact file.
func ChartPath(fileName string) string {
	return ChartsDir + "/" + fileName
}

// CleanPath normalizes a slash-separated relative path. Absolute paths and
// paths that climb out of the root are rejected with ErrInvalidPath.
func CleanPath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	p = strings.ReplaceAll(p, "\\", "/")
	if strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, p)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q escapes the storage root", ErrInvalidPath, p)
	}
	if clean == "." {
		return "", nil
	}
	return clean, nil
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
