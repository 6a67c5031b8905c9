// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"sync"
)

type memoryKV struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory returns a process-local store, used by tests and the
// "memory" backend.
func NewMemory() Store {
	return &docStore{kv: &memoryKV{docs: make(map[string][]byte)}}
}

func (m *memoryKV) get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.docs[key]
	return v, ok, nil
}

func (m *memoryKV) set(ctx context.Context, key string, val []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[key] = append([]byte(nil), val...)
	m.mu.Unlock()
	return nil
}
