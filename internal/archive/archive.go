// Package archive persists backtest result documents to cold storage.
// Two backends are supported: a local directory tree and any
// S3-compatible object store.
package archive

import (
	"context"
	"fmt"

	"github.com/quantrell/tradewind/internal/config"
)

// Storage is the backend contract for archived documents.
type Storage interface {
	// Write stores data at the given key, creating parents as needed.
	Write(ctx context.Context, key string, data []byte) error

	// Read retrieves the data stored at key.
	Read(ctx context.Context, key string) ([]byte, error)

	// List returns all keys under the prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the data at key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether data exists at key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New creates the storage backend selected by the configuration.
func New(cfg config.ArchiveConfig) (Storage, error) {
	switch cfg.Type {
	case "", "localfs":
		path := cfg.Path
		if path == "" {
			path = "archive"
		}
		return NewLocalFS(path)
	case "s3":
		return NewS3(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown archive type: %s", cfg.Type)
	}
}
