// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/catalog"
	"github.com/someonegg/panelmatch/internal/config"
)

func writeFile(t *testing.T, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return file
}

func TestLoadPricing(t *testing.T) {
	cfg, err := loadPricing("")
	if err != nil || len(cfg.MaterialPrices) != 4 {
		t.Fatalf("Expected defaults, got %+v, %v", cfg, err)
	}

	file := writeFile(t, "pricing.json", map[string]interface{}{
		"restoration": map[string]interface{}{"solid": 9000},
	})
	cfg, err = loadPricing(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Restoration.Solid != 9000 || cfg.Restoration.Veneer != 12500 || len(cfg.MaterialPrices) != 4 {
		t.Errorf("Expected merged pricing, got %+v", cfg)
	}

	if _, err := loadPricing(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDoSearch(t *testing.T) {
	catalogFile := writeFile(t, "suppliers.json", []panelmatch.Supplier{catalog.DefaultSupplier()})
	out := filepath.Join(t.TempDir(), "results.json")

	q := panelmatch.Query{Length: 1000, Width: 620, Thicknesses: []int{40}}
	if err := doSearch(q, catalogFile, "", out, 2); err != nil {
		t.Fatalf("search: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var results []panelmatch.Result
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 0.62 m² * 29640 = 18377 against a purchase price of 7700
	if len(results) != 1 || results[0].Material.ID != "40" || results[0].SellPrice != 18377 || results[0].Markup != 139 {
		t.Errorf("Unexpected results %+v", results)
	}
	if !bytes.Contains(data, []byte("Два дуба")) {
		t.Error("Expected unescaped supplier name")
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	st, err := openStore(ctx, config.Store{Backend: config.BackendMemory})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	st.Close()

	st, err = openStore(ctx, config.Store{Backend: config.BackendPebble, Pebble: config.Pebble{Dir: t.TempDir()}})
	if err != nil {
		t.Fatalf("pebble: %v", err)
	}
	st.Close()

	if _, err := openStore(ctx, config.Store{Backend: "etcd"}); err == nil {
		t.Error("Expected error for unknown backend")
	}
}
