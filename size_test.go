// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panelmatch

import "testing"

func makeMaterial(id string, length, width int, price float64) Material {
	return Material{
		ID:         id,
		Wood:       "Oak",
		ShieldType: "Solid",
		Thickness:  20,
		Length:     length,
		Width:      width,
		Price:      price,
	}
}

func ids(ms []Material) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Run("AllExactKept", func(t *testing.T) {
		pool := []Material{
			makeMaterial("a", 1000, 620, 1),
			makeMaterial("b", 1000, 620, 2),
			makeMaterial("c", 1200, 620, 3),
		}
		c := Classify(pool, 1000, 620, false)
		if got := ids(c.Exact); len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("Expected exact [a b], got %v", got)
		}
		if got := ids(c.Larger); len(got) != 1 || got[0] != "c" {
			t.Errorf("Expected larger [c], got %v", got)
		}
		if len(c.Smaller) != 0 {
			t.Errorf("Expected no smaller, got %v", ids(c.Smaller))
		}
	})

	t.Run("LargerClosestLengthFirst", func(t *testing.T) {
		pool := []Material{
			makeMaterial("far", 1500, 620, 1),
			makeMaterial("wide", 1100, 900, 1),
			makeMaterial("near", 1100, 640, 1),
		}
		c := Classify(pool, 1000, 620, false)
		if got := ids(c.Larger); len(got) != 1 || got[0] != "near" {
			t.Errorf("Expected larger [near], got %v", got)
		}
	})

	t.Run("SameLengthOtherWidthIsLarger", func(t *testing.T) {
		pool := []Material{
			makeMaterial("longer", 1100, 620, 1),
			makeMaterial("narrow", 1000, 600, 1),
		}
		c := Classify(pool, 1000, 620, false)
		if got := ids(c.Larger); len(got) != 1 || got[0] != "narrow" {
			t.Errorf("Expected larger [narrow], got %v", got)
		}
		if len(c.Exact) != 0 {
			t.Errorf("Expected no exact, got %v", ids(c.Exact))
		}
	})

	t.Run("LargerTieKeepsPoolOrder", func(t *testing.T) {
		pool := []Material{
			makeMaterial("first", 1100, 600, 1),
			makeMaterial("second", 1100, 640, 1),
		}
		c := Classify(pool, 1000, 620, false)
		if got := ids(c.Larger); got[0] != "first" {
			t.Errorf("Expected first, got %v", got)
		}
	})

	t.Run("SmallerOnlyWhenRequested", func(t *testing.T) {
		pool := []Material{
			makeMaterial("s900", 900, 620, 1),
			makeMaterial("s950", 950, 700, 1),
			makeMaterial("l2000", 2000, 620, 1),
		}
		c := Classify(pool, 1000, 620, false)
		if len(c.Smaller) != 0 {
			t.Errorf("Expected no smaller, got %v", ids(c.Smaller))
		}
		c = Classify(pool, 1000, 620, true)
		if got := ids(c.Smaller); len(got) != 1 || got[0] != "s950" {
			t.Errorf("Expected smaller [s950], got %v", got)
		}
		if got := ids(c.Larger); len(got) != 1 || got[0] != "l2000" {
			t.Errorf("Expected larger [l2000], got %v", got)
		}
	})

	t.Run("EmptyPool", func(t *testing.T) {
		if c := Classify(nil, 1000, 620, true); !c.Empty() {
			t.Errorf("Expected empty classes, got %+v", c)
		}
	})
}

func TestClasses_Candidates(t *testing.T) {
	c := Classes{
		Exact:   []Material{makeMaterial("e", 1000, 620, 1)},
		Larger:  []Material{makeMaterial("l", 1200, 600, 1)},
		Smaller: []Material{makeMaterial("s", 900, 700, 1)},
	}
	cands := c.Candidates(1000, 620)
	if len(cands) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(cands))
	}

	want := []struct {
		t          MatchType
		lenD, widD int
	}{
		{Exact, 0, 0},
		{Larger, 200, 20},
		{Smaller, 100, 80},
	}
	for i, w := range want {
		got := cands[i]
		if got.MatchType != w.t || got.LengthDiff != w.lenD || got.WidthDiff != w.widD {
			t.Errorf("candidate %d: got %s/%d/%d, want %s/%d/%d",
				i, got.MatchType, got.LengthDiff, got.WidthDiff, w.t, w.lenD, w.widD)
		}
	}
}

func TestFallback(t *testing.T) {
	pool := []Material{
		makeMaterial("short", 800, 620, 1),
		makeMaterial("same", 1000, 620, 1),
		makeMaterial("long", 1300, 500, 1),
		makeMaterial("sameLenOtherWidth", 1000, 700, 1),
	}
	cands := Fallback(pool, 1000, 620)
	if len(cands) != 4 {
		t.Fatalf("Expected every pooled material, got %d", len(cands))
	}

	want := []struct {
		t          MatchType
		lenD, widD int
	}{
		{Smaller, 200, 0},
		{Exact, 0, 0},
		{Larger, 300, 120},
		{Larger, 0, 80},
	}
	for i, w := range want {
		got := cands[i]
		if got.MatchType != w.t || got.LengthDiff != w.lenD || got.WidthDiff != w.widD {
			t.Errorf("%s: got %s/%d/%d, want %s/%d/%d", got.Material.ID,
				got.MatchType, got.LengthDiff, got.WidthDiff, w.t, w.lenD, w.widD)
		}
	}
}
