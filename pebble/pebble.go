// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"

	"github.com/ava-labs/wessonvm/state"
)

var _ state.Mutable = (*Database)(nil)

type Config struct {
	CacheSize    int // B
	BytesPerSync int // B
	Sync         bool
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:    512 * 1024 * 1024,
		BytesPerSync: 512 * 1024,
		Sync:         false,
	}
}

// Database implements [state.Mutable] over a pebble store, giving the slot
// store a durable backend. The in-memory map stores remain the default for
// tests.
type Database struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions

	closeLock sync.RWMutex
	closed    bool
}

func New(dir string, cfg Config) (*Database, error) {
	opts := &pebble.Options{
		Cache:        pebble.NewCache(int64(cfg.CacheSize)),
		BytesPerSync: cfg.BytesPerSync,
	}
	opts.Experimental.ReadSamplingMultiplier = -1 // explicitly disable seek compaction
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, err
	}
	writeOpts := pebble.NoSync
	if cfg.Sync {
		writeOpts = pebble.Sync
	}
	return &Database{db: db, writeOpts: writeOpts}, nil
}

func (db *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	db.closeLock.RLock()
	defer db.closeLock.RUnlock()
	if db.closed {
		return nil, database.ErrClosed
	}

	v, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// [v] is only valid until closer is released.
	cp := make([]byte, len(v))
	copy(cp, v)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return cp, nil
}

func (db *Database) Insert(_ context.Context, key []byte, value []byte) error {
	db.closeLock.RLock()
	defer db.closeLock.RUnlock()
	if db.closed {
		return database.ErrClosed
	}
	return db.db.Set(key, value, db.writeOpts)
}

func (db *Database) Remove(_ context.Context, key []byte) error {
	db.closeLock.RLock()
	defer db.closeLock.RUnlock()
	if db.closed {
		return database.ErrClosed
	}
	return db.db.Delete(key, db.writeOpts)
}

func (db *Database) Close() error {
	db.closeLock.Lock()
	defer db.closeLock.Unlock()
	if db.closed {
		return database.ErrClosed
	}
	db.closed = true
	return db.db.Close()
}
