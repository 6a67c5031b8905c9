// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panelmatch

// Candidate is a priced material competing for a supplier's single result.
type Candidate struct {
	Material   Material
	MatchType  MatchType
	LengthDiff int
	WidthDiff  int

	SellPrice  int64
	Markup     int64
	PricePerM2 *float64
}

// compare orders candidates best first:
//
//  1. higher markup
//  2. lower sell price, an unpriced (zero) one always last
//  3. exact, then larger, then smaller
//  4. lower length diff
//  5. lower width diff
func compare(a, b *Candidate) int {
	if a.Markup != b.Markup {
		if a.Markup > b.Markup {
			return -1
		}
		return 1
	}
	if a.SellPrice != b.SellPrice {
		switch {
		case a.SellPrice == 0:
			return 1
		case b.SellPrice == 0:
			return -1
		case a.SellPrice < b.SellPrice:
			return -1
		}
		return 1
	}
	if r := a.MatchType.rank() - b.MatchType.rank(); r != 0 {
		return r
	}
	if r := a.LengthDiff - b.LengthDiff; r != 0 {
		return r
	}
	return a.WidthDiff - b.WidthDiff
}

// best returns the top ranked candidate without reordering cands.
func best(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	top := 0
	for i := 1; i < len(cands); i++ {
		if compare(&cands[i], &cands[top]) < 0 {
			top = i
		}
	}
	return cands[top], true
}
