package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/garyhouston/exifdir"
)

// Prefix of the keys holding Directories, leaving room for other records
// in the same database.
const badgerKeyPrefix = "exif:"

// BadgerStore keeps serialized Directories in an embedded badger database.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// Open or create a badger database in the directory at path. Entries
// expire after ttl, unless ttl is 0.
func NewBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db, ttl: ttl}, nil
}

func badgerKey(key string) []byte {
	return []byte(badgerKeyPrefix + key)
}

func (s *BadgerStore) Get(ctx context.Context, key string) (*exifdir.Directory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		errorf("badger get %s: %v", key, err)
		return nil, fmt.Errorf("store: get %s: %w", key, err)
	}
	tracef("badger get %s: %d bytes", key, len(data))
	return decode(key, data)
}

func (s *BadgerStore) Put(ctx context.Context, key string, dir *exifdir.Directory) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(key, dir)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(badgerKey(key), data)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		errorf("badger put %s: %v", key, err)
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	tracef("badger put %s: %d bytes", key, len(data))
	return nil
}

func (s *BadgerStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(badgerKey(key))
	})
	if err != nil {
		errorf("badger delete %s: %v", key, err)
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
