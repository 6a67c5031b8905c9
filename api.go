// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panelmatch finds, for a requested panel size, the supplier
// material that can be sold at the best margin.
package panelmatch

import (
	"errors"

	"github.com/someonegg/panelmatch/pricing"
)

type Engine interface {
	Search(q Query, suppliers []Supplier, prices pricing.Config) ([]Result, error)
}

type Material struct {
	ID         string  `json:"id"`
	Wood       string  `json:"wood"`
	ShieldType string  `json:"shieldType"`
	Grade      string  `json:"grade,omitempty"`
	Thickness  int     `json:"thickness"` // mm
	Width      int     `json:"width"`     // mm
	Length     int     `json:"length"`    // mm
	Price      float64 `json:"price"`     // purchase price
}

func (m *Material) spec() pricing.Spec {
	return pricing.Spec{
		Wood:       m.Wood,
		ShieldType: m.ShieldType,
		Thickness:  m.Thickness,
		Grade:      m.Grade,
	}
}

type Supplier struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Materials []Material `json:"materials"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// Query is a search request. Every filter is an inclusion set; a nil or
// empty set leaves that attribute unconstrained.
type Query struct {
	Length int `json:"length"` // mm
	Width  int `json:"width"`  // mm

	Woods       []string `json:"wood,omitempty"`
	ShieldTypes []string `json:"shieldType,omitempty"`
	Grades      []string `json:"grade,omitempty"`
	Thicknesses []int    `json:"thickness,omitempty"`

	IncludeSmaller bool `json:"showSmaller,omitempty"`
}

type MatchType string

const (
	Exact   MatchType = "exact"
	Larger  MatchType = "larger"
	Smaller MatchType = "smaller"
)

func (t MatchType) rank() int {
	switch t {
	case Exact:
		return 0
	case Larger:
		return 1
	}
	return 2
}

type Result struct {
	Supplier   string    `json:"supplier"`
	SupplierID string    `json:"supplierId"`
	Material   Material  `json:"material"`
	MatchType  MatchType `json:"matchType"`
	SellPrice  int64     `json:"sellPrice"`
	Markup     int64     `json:"markup"` // percent over purchase price
	PricePerM2 *float64  `json:"pricePerM2"`
}

var ErrInvalidQuery = errors.New("invalid query")
