// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pricing

// Default returns the built-in price list. Every call returns a fresh
// copy that the caller may modify.
func Default() Config {
	return Config{
		Restoration: Restoration{
			Solid:     10500,
			Veneer:    12500,
			Milling:   1000,
			Coating2K: 4000,
		},
		NewCountertop: NewCountertop{
			Solid20mm:      SolidRanges{Range1: 22990, Range2: 24282, Range3: 25811},
			Solid40mm:      SolidRanges{Range1: 29640, Range2: 32490, Range3: 33791},
			Spliced20mm:    19979,
			Spliced40mm:    21793,
			Coating2K:      4000,
			WidthSurcharge: 1000,
			Cutout:         1500,
		},
		MaterialPrices: defaultMaterialPrices(),
	}
}

func defaultMaterialPrices() []Entry {
	return []Entry{
		{
			ID: "oak-solid-20", Wood: "Дуб", ShieldType: "Цельноламельный", Thickness: 20,
			Price: Banded(
				Band{ID: "r1", MinLength: 900, MaxLength: 2150, PricePerM2: 22990},
				Band{ID: "r2", MinLength: 2151, MaxLength: 2950, PricePerM2: 24282},
				Band{ID: "r3", MinLength: 2951, MaxLength: 3500, PricePerM2: 25811},
			),
		},
		{
			ID: "oak-solid-40", Wood: "Дуб", ShieldType: "Цельноламельный", Thickness: 40,
			Price: Banded(
				Band{ID: "r1", MinLength: 900, MaxLength: 2150, PricePerM2: 29640},
				Band{ID: "r2", MinLength: 2151, MaxLength: 2950, PricePerM2: 32490},
				Band{ID: "r3", MinLength: 2951, MaxLength: 3500, PricePerM2: 33791},
			),
		},
		{ID: "oak-spliced-20", Wood: "Дуб", ShieldType: "Сращённый", Thickness: 20, Price: Scalar(19979)},
		{ID: "oak-spliced-40", Wood: "Дуб", ShieldType: "Сращённый", Thickness: 40, Price: Scalar(21793)},
	}
}

// Merge completes a stored, possibly partial, price list with defaults.
// A nil config yields the defaults. Zero product line values are taken
// from the defaults; a nil MaterialPrices is replaced by the default list
// while an explicitly empty one is kept.
func Merge(stored *Config) Config {
	def := Default()
	if stored == nil {
		return def
	}

	out := *stored

	r, dr := &out.Restoration, def.Restoration
	fill(&r.Solid, dr.Solid)
	fill(&r.Veneer, dr.Veneer)
	fill(&r.Milling, dr.Milling)
	fill(&r.Coating2K, dr.Coating2K)

	n, dn := &out.NewCountertop, def.NewCountertop
	fillRanges(&n.Solid20mm, dn.Solid20mm)
	fillRanges(&n.Solid40mm, dn.Solid40mm)
	fill(&n.Spliced20mm, dn.Spliced20mm)
	fill(&n.Spliced40mm, dn.Spliced40mm)
	fill(&n.Coating2K, dn.Coating2K)
	fill(&n.WidthSurcharge, dn.WidthSurcharge)
	fill(&n.Cutout, dn.Cutout)

	if out.MaterialPrices == nil {
		out.MaterialPrices = def.MaterialPrices
	}
	return out
}

func fillRanges(dst *SolidRanges, def SolidRanges) {
	fill(&dst.Range1, def.Range1)
	fill(&dst.Range2, def.Range2)
	fill(&dst.Range3, def.Range3)
}

func fill(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}
