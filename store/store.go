// Package store keeps serialized exifdir Directories under string keys, in
// memory, in a badger database, or in an S3 bucket.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/garyhouston/exifdir"
)

// Returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Store persists Directories as the JSON produced by exifdir.Serialize.
// Implementations are safe for concurrent use. Deleting a missing key is
// not an error.
type Store interface {
	Get(ctx context.Context, key string) (*exifdir.Directory, error)
	Put(ctx context.Context, key string, dir *exifdir.Directory) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendS3     = "s3"
)

type Config struct {
	Backend    string
	BadgerPath string
	// Entries expire after TTL in the badger backend; 0 keeps them forever.
	TTL time.Duration
	S3  S3Config
}

// Open the store selected by cfg.Backend. An empty backend name selects the
// in-memory store.
func Open(cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendMemory:
		return NewMemStore(), nil
	case BackendBadger:
		if cfg.BadgerPath == "" {
			return nil, errors.New("store: badger backend needs a path")
		}
		return NewBadgerStore(cfg.BadgerPath, cfg.TTL)
	case BackendS3:
		return NewS3Store(cfg.S3)
	}
	return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
}

func encode(key string, dir *exifdir.Directory) ([]byte, error) {
	data, err := exifdir.Serialize(dir)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", key, err)
	}
	return data, nil
}

func decode(key string, data []byte) (*exifdir.Directory, error) {
	dir, err := exifdir.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", key, err)
	}
	return dir, nil
}
