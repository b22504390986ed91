// Package storage keeps rendered chart artifacts on the local filesystem or
// in a Google Cloud Storage bucket behind one interface.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrInvalidPath is returned for paths that are absolute or escape the
	// storage root.
	ErrInvalidPath = errors.New("invalid storage path")
	// ErrNotFound is returned when a file does not exist.
	ErrNotFound = errors.New("file not found")
)

// StorageClient defines the interface for basic storage operations
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// CreateDir creates a directory (and any necessary parent directories)
	CreateDir(ctx context.Context, dirPath string) error

	// StoreFile stores a file at the specified path
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListDir lists file paths under a directory
	ListDir(ctx context.Context, dirPath string, recursive bool) ([]string, error)

	// DeleteFile removes the file at the specified path
	DeleteFile(ctx context.Context, filePath string) error

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)
}
