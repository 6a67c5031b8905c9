// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panelmatch

import "sort"

// Classes is the outcome of size matching over one supplier's pool.
type Classes struct {
	Exact   []Material
	Larger  []Material // at most one
	Smaller []Material // at most one, only when requested
}

func (c Classes) Empty() bool {
	return len(c.Exact) == 0 && len(c.Larger) == 0 && len(c.Smaller) == 0
}

// Classify splits pool by size proximity to length x width.
//
// Every exact match is kept. Larger means length >= the target with any
// width; only the closest one by (length diff, width diff) is kept.
// Smaller works the same way below the target length and is computed only
// when includeSmaller is set.
func Classify(pool []Material, length, width int, includeSmaller bool) Classes {
	var (
		c       Classes
		larger  []sized
		smaller []sized
	)

	for i := range pool {
		m := &pool[i]
		switch {
		case m.Length == length && m.Width == width:
			c.Exact = append(c.Exact, *m)
		case m.Length >= length:
			larger = append(larger, sized{m, m.Length - length, absInt(m.Width - width)})
		case includeSmaller:
			smaller = append(smaller, sized{m, length - m.Length, absInt(m.Width - width)})
		}
	}

	if best, ok := closest(larger); ok {
		c.Larger = []Material{*best}
	}
	if best, ok := closest(smaller); ok {
		c.Smaller = []Material{*best}
	}
	return c
}

type sized struct {
	m          *Material
	lengthDiff int
	widthDiff  int
}

func closest(l []sized) (*Material, bool) {
	if len(l) == 0 {
		return nil, false
	}
	sort.SliceStable(l, func(i, j int) bool {
		if l[i].lengthDiff != l[j].lengthDiff {
			return l[i].lengthDiff < l[j].lengthDiff
		}
		return l[i].widthDiff < l[j].widthDiff
	})
	return l[0].m, true
}

// Fallback classifies every material of pool by its own length. It is
// used when Classify found nothing in a non-empty pool, so a supplier
// whose filtered stock misses the size still shows up.
func Fallback(pool []Material, length, width int) []Candidate {
	cands := make([]Candidate, 0, len(pool))
	for _, m := range pool {
		t := Larger
		if m.Length == length && m.Width == width {
			t = Exact
		} else if m.Length < length {
			t = Smaller
		}
		cands = append(cands, Candidate{
			Material:   m,
			MatchType:  t,
			LengthDiff: absInt(m.Length - length),
			WidthDiff:  absInt(m.Width - width),
		})
	}
	return cands
}

// Candidates flattens c into candidates with their size differences, in
// exact, larger, smaller order.
func (c Classes) Candidates(length, width int) []Candidate {
	cands := make([]Candidate, 0, len(c.Exact)+len(c.Larger)+len(c.Smaller))
	for _, m := range c.Exact {
		cands = append(cands, Candidate{Material: m, MatchType: Exact})
	}
	for _, m := range c.Larger {
		cands = append(cands, Candidate{
			Material:   m,
			MatchType:  Larger,
			LengthDiff: m.Length - length,
			WidthDiff:  absInt(m.Width - width),
		})
	}
	for _, m := range c.Smaller {
		cands = append(cands, Candidate{
			Material:   m,
			MatchType:  Smaller,
			LengthDiff: length - m.Length,
			WidthDiff:  absInt(m.Width - width),
		})
	}
	return cands
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
