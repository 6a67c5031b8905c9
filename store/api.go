// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store persists supplier catalogs and the price list.
//
// Both are kept as whole JSON documents under fixed keys, so every
// backend is a small key/value adapter.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/pricing"
)

const (
	SuppliersKey = "suppliers"
	PricingKey   = "countertop_pricing"
)

// ErrUnavailable wraps every backend failure.
var ErrUnavailable = errors.New("store unavailable")

// Store is safe for concurrent use. Reads of a missing document return a
// nil value and no error.
type Store interface {
	Suppliers(ctx context.Context) ([]panelmatch.Supplier, error)
	SaveSuppliers(ctx context.Context, suppliers []panelmatch.Supplier) error
	Pricing(ctx context.Context) (*pricing.Config, error)
	SavePricing(ctx context.Context, cfg pricing.Config) error
	Close() error
}

// kv is what a backend has to provide.
type kv interface {
	get(ctx context.Context, key string) ([]byte, bool, error)
	set(ctx context.Context, key string, val []byte) error
}

// docStore implements Store on top of a kv backend.
type docStore struct {
	kv    kv
	close func() error
}

func (s *docStore) Suppliers(ctx context.Context) ([]panelmatch.Supplier, error) {
	var suppliers []panelmatch.Supplier
	ok, err := s.load(ctx, SuppliersKey, &suppliers)
	if err != nil || !ok {
		return nil, err
	}
	return suppliers, nil
}

func (s *docStore) SaveSuppliers(ctx context.Context, suppliers []panelmatch.Supplier) error {
	if suppliers == nil {
		suppliers = []panelmatch.Supplier{}
	}
	return s.save(ctx, SuppliersKey, suppliers)
}

func (s *docStore) Pricing(ctx context.Context) (*pricing.Config, error) {
	var cfg pricing.Config
	ok, err := s.load(ctx, PricingKey, &cfg)
	if err != nil || !ok {
		return nil, err
	}
	return &cfg, nil
}

func (s *docStore) SavePricing(ctx context.Context, cfg pricing.Config) error {
	return s.save(ctx, PricingKey, cfg)
}

func (s *docStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func (s *docStore) load(ctx context.Context, key string, v interface{}) (bool, error) {
	data, ok, err := s.kv.get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: get %s: %v", ErrUnavailable, key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *docStore) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
