// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"errors"
	"os"
	"reflect"
	"sync"
	"testing"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/pricing"
)

func sampleSuppliers() []panelmatch.Supplier {
	return []panelmatch.Supplier{
		{
			ID:   "dva-duba",
			Name: "Два дуба",
			Materials: []panelmatch.Material{
				{ID: "1", Wood: "Дуб", ShieldType: "Цельноламельный", Grade: "—", Thickness: 20, Width: 620, Length: 900, Price: 3350},
			},
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-01T00:00:00Z",
		},
	}
}

// testStore runs the behaviour every backend shares.
func testStore(t *testing.T, st Store) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		suppliers, err := st.Suppliers(ctx)
		if err != nil || suppliers != nil {
			t.Fatalf("Expected nil suppliers, got %v, %v", suppliers, err)
		}
		cfg, err := st.Pricing(ctx)
		if err != nil || cfg != nil {
			t.Fatalf("Expected nil pricing, got %v, %v", cfg, err)
		}
	})

	t.Run("Suppliers", func(t *testing.T) {
		want := sampleSuppliers()
		if err := st.SaveSuppliers(ctx, want); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := st.Suppliers(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})

	t.Run("SaveNilSuppliers", func(t *testing.T) {
		if err := st.SaveSuppliers(ctx, nil); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := st.Suppliers(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("Expected stored empty list, got %v", got)
		}
	})

	t.Run("Pricing", func(t *testing.T) {
		want := pricing.Default()
		if err := st.SavePricing(ctx, want); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := st.Pricing(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got == nil || !reflect.DeepEqual(*got, want) {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})
}

func TestMemory(t *testing.T) {
	st := NewMemory()
	t.Cleanup(func() { _ = st.Close() })
	testStore(t, st)
}

func TestMemory_Canceled(t *testing.T) {
	st := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := st.Suppliers(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if err := st.SavePricing(ctx, pricing.Default()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestMemory_Concurrent(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := st.SaveSuppliers(ctx, sampleSuppliers()); err != nil {
					t.Errorf("save: %v", err)
					return
				}
				if _, err := st.Suppliers(ctx); err != nil {
					t.Errorf("load: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPebble(t *testing.T) {
	dir := t.TempDir()
	st, err := NewPebble(dir)
	if err != nil {
		t.Fatalf("pebble open: %v", err)
	}
	testStore(t, st)
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// data survives a reopen
	st, err = NewPebble(dir)
	if err != nil {
		t.Fatalf("pebble reopen: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	cfg, err := st.Pricing(context.Background())
	if err != nil || cfg == nil {
		t.Fatalf("Expected pricing after reopen, got %v, %v", cfg, err)
	}
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	st, err := NewRedis(ctx, RedisOptions{Addr: addr, DB: 15})
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	rs := st.(*docStore).kv.(redisKV)
	if err := rs.rdb.Del(ctx, SuppliersKey, PricingKey).Err(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	testStore(t, st)
}

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(context.Background(), RedisOptions{Addr: "127.0.0.1:1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}
