package archive

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalFS stores documents under a base directory.
type LocalFS struct {
	base string
}

// NewLocalFS creates local storage rooted at base, creating it if needed.
func NewLocalFS(base string) (*LocalFS, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive root: %w", err)
	}
	return &LocalFS{base: base}, nil
}

func (l *LocalFS) resolve(key string) string {
	return filepath.Join(l.base, filepath.FromSlash(key))
}

func (l *LocalFS) Write(_ context.Context, key string, data []byte) error {
	target := l.resolve(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent directories: %w", err)
	}
	return os.WriteFile(target, data, 0o644)
}

func (l *LocalFS) Read(_ context.Context, key string) ([]byte, error) {
	return os.ReadFile(l.resolve(key))
}

func (l *LocalFS) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(l.resolve(prefix), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.base, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	return keys, err
}

func (l *LocalFS) Delete(_ context.Context, key string) error {
	return os.Remove(l.resolve(key))
}

func (l *LocalFS) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(l.resolve(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
