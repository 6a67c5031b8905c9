// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pricing

import "testing"

func TestMerge(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		got := Merge(nil)
		if got.Restoration.Solid != 10500 {
			t.Errorf("Expected default solid 10500, got %v", got.Restoration.Solid)
		}
		if len(got.MaterialPrices) != 4 {
			t.Errorf("Expected 4 default material prices, got %d", len(got.MaterialPrices))
		}
	})

	t.Run("Partial", func(t *testing.T) {
		stored := &Config{
			Restoration: Restoration{Solid: 11000},
			NewCountertop: NewCountertop{
				Solid20mm: SolidRanges{Range2: 25000},
				Cutout:    2000,
			},
		}
		got := Merge(stored)
		if got.Restoration.Solid != 11000 {
			t.Errorf("Expected stored solid 11000, got %v", got.Restoration.Solid)
		}
		if got.Restoration.Veneer != 12500 {
			t.Errorf("Expected default veneer 12500, got %v", got.Restoration.Veneer)
		}
		if got.NewCountertop.Solid20mm.Range1 != 22990 || got.NewCountertop.Solid20mm.Range2 != 25000 {
			t.Errorf("Unexpected solid20mm %+v", got.NewCountertop.Solid20mm)
		}
		if got.NewCountertop.Cutout != 2000 || got.NewCountertop.WidthSurcharge != 1000 {
			t.Errorf("Unexpected new countertop %+v", got.NewCountertop)
		}
		if len(got.MaterialPrices) != 4 {
			t.Errorf("Expected default material prices, got %d", len(got.MaterialPrices))
		}
		if stored.Restoration.Veneer != 0 {
			t.Error("Merge must not modify its input")
		}
	})

	t.Run("EmptyMaterialPricesKept", func(t *testing.T) {
		got := Merge(&Config{MaterialPrices: []Entry{}})
		if got.MaterialPrices == nil || len(got.MaterialPrices) != 0 {
			t.Errorf("Expected explicit empty list kept, got %v", got.MaterialPrices)
		}
	})
}

func TestDefault_Fresh(t *testing.T) {
	a := Default()
	a.MaterialPrices[0].Wood = "changed"
	b := Default()
	if b.MaterialPrices[0].Wood != "Дуб" {
		t.Error("Default must return an independent copy")
	}
}
