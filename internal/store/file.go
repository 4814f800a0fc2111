package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as one JSON document under a data directory,
// for local-first setups with no Redis available. Writes go through a temp
// file and rename so a crash never leaves a half-written value behind.
type FileStore struct {
	dir    string
	prefix string
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed. An empty prefix falls back to DefaultPrefix.
func NewFileStore(dir, prefix string) (*FileStore, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &FileStore{
		dir:    dir,
		prefix: prefix,
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, s.prefix+key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string, dest interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("store: read %q: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return &DecodeError{Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) Set(ctx context.Context, key string, value interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal %q: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, s.prefix+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: temp file for %q: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: replace %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: remove %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("store: data dir: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
