// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pricing resolves the sell price per square meter of a panel
// from a configurable price list.
package pricing

// Spec identifies what is being priced.
type Spec struct {
	Wood       string
	ShieldType string
	Thickness  int
	Grade      string // empty means ungraded
}

// Band is a length tier, both ends inclusive (mm).
type Band struct {
	ID         string  `json:"id"`
	MinLength  int     `json:"minLength"`
	MaxLength  int     `json:"maxLength"`
	PricePerM2 float64 `json:"pricePerM2"`
}

func (b Band) covers(length int) bool {
	return length >= b.MinLength && length <= b.MaxLength
}

type Entry struct {
	ID         string `json:"id"`
	Wood       string `json:"wood"`
	ShieldType string `json:"shieldType"`
	Thickness  int    `json:"thickness"`
	Grade      string `json:"grade,omitempty"`
	Price      Price  `json:"pricePerM2"`
}

// Restoration holds per m² prices of the restoration product line.
type Restoration struct {
	Solid     float64 `json:"solid"`
	Veneer    float64 `json:"veneer"`
	Milling   float64 `json:"milling"`
	Coating2K float64 `json:"coating2K"`
}

// SolidRanges are the three length tiers of solid countertops:
// 900-2150, 2151-2950 and 2951-3500 mm.
type SolidRanges struct {
	Range1 float64 `json:"range1"`
	Range2 float64 `json:"range2"`
	Range3 float64 `json:"range3"`
}

// NewCountertop holds per m² prices of the new-manufacture product line.
type NewCountertop struct {
	Solid20mm      SolidRanges `json:"solid20mm"`
	Solid40mm      SolidRanges `json:"solid40mm"`
	Spliced20mm    float64     `json:"spliced20mm"`
	Spliced40mm    float64     `json:"spliced40mm"`
	Coating2K      float64     `json:"coating2K"`
	WidthSurcharge float64     `json:"widthSurcharge"` // per 50mm above 600mm
	Cutout         float64     `json:"cutout"`
}

// Config is the whole price list. Only MaterialPrices takes part in
// catalog search; the product line sections are stored and served as is.
type Config struct {
	Restoration    Restoration   `json:"restoration"`
	NewCountertop  NewCountertop `json:"newCountertop"`
	MaterialPrices []Entry       `json:"materialPrices"`
}

// Table returns the material price entries as a resolvable table.
func (c *Config) Table() Table {
	return Table(c.MaterialPrices)
}
