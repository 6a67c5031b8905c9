// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type priceKind uint8

const (
	kindNone priceKind = iota
	kindScalar
	kindBanded
)

// Price is either a single price per m² for every length, or an ordered
// list of length bands. The zero value has no price at all.
//
// On the wire a scalar is a JSON number and a banded price is a JSON array.
type Price struct {
	kind   priceKind
	scalar float64
	bands  []Band
}

func Scalar(perM2 float64) Price {
	return Price{kind: kindScalar, scalar: perM2}
}

func Banded(bands ...Band) Price {
	return Price{kind: kindBanded, bands: bands}
}

func (p Price) IsScalar() bool { return p.kind == kindScalar }
func (p Price) IsBanded() bool { return p.kind == kindBanded }

// Scalar returns the flat price, ok is false for banded or empty prices.
func (p Price) Scalar() (perM2 float64, ok bool) {
	return p.scalar, p.kind == kindScalar
}

// Bands returns the bands in scan order.
func (p Price) Bands() []Band {
	return p.bands
}

// At returns the price for a length. Bands are scanned in list order and
// the first covering one wins.
func (p Price) At(length int) (float64, bool) {
	switch p.kind {
	case kindScalar:
		return p.scalar, true
	case kindBanded:
		for _, b := range p.bands {
			if b.covers(length) {
				return b.PricePerM2, true
			}
		}
	}
	return 0, false
}

func (p Price) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case kindScalar:
		return json.Marshal(p.scalar)
	case kindBanded:
		bands := p.bands
		if bands == nil {
			bands = []Band{}
		}
		return json.Marshal(bands)
	}
	return []byte("null"), nil
}

var errBadPrice = errors.New("price must be a number or an array of bands")

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*p = Price{}
		return nil
	case data[0] == '[':
		var bands []Band
		if err := json.Unmarshal(data, &bands); err != nil {
			return fmt.Errorf("price bands: %w", err)
		}
		*p = Banded(bands...)
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("price: %w", err)
		}
		*p = Scalar(v)
		return nil
	}
	return errBadPrice
}
