// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

type pebbleKV struct {
	db *pebble.DB
}

// NewPebble opens (or creates) an embedded store in dir.
func NewPebble(dir string) (Store, error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: pebble open: %v", ErrUnavailable, err)
	}
	return &docStore{kv: pebbleKV{db}, close: db.Close}, nil
}

func (p pebbleKV) get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	v, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()
	return append([]byte(nil), v...), true, nil
}

// set syncs the WAL on every write.
func (p pebbleKV) set(ctx context.Context, key string, val []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.db.Set([]byte(key), val, pebble.Sync)
}
