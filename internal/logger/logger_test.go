// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedact(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Wrap(zap.New(core))

	l.Info("admin write", "password", "admin2024", "supplier_id", "dva-duba")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["password"] != "[REDACTED]" {
		t.Errorf("Expected password redacted, got %v", fields["password"])
	}
	if fields["supplier_id"] != "dva-duba" {
		t.Errorf("Expected supplier_id kept, got %v", fields["supplier_id"])
	}
}

func TestRedact_NoCopyWhenClean(t *testing.T) {
	kv := []interface{}{"a", 1, "b", 2}
	out := redact(kv)
	if &out[0] != &kv[0] {
		t.Error("Expected input slice returned unchanged")
	}
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.With("mode", mode).Debug("ok")
	}
}
