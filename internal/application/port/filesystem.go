package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	// MkdirAll creates path and any missing parents.
	MkdirAll(ctx context.Context, path string) error
	// WriteFile atomically replaces path with data.
	WriteFile(ctx context.Context, path string, data []byte) error
}
