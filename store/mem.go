package store

import (
	"context"
	"sync"

	"github.com/garyhouston/exifdir"
)

// MemStore holds serialized Directories in a map. It is mostly useful for
// tests and single process tools.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Get(ctx context.Context, key string) (*exifdir.Directory, error) {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode(key, data)
}

func (s *MemStore) Put(ctx context.Context, key string, dir *exifdir.Directory) error {
	data, err := encode(key, dir)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Close() error {
	return nil
}
