// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pricing

// Table is an ordered list of price entries. Earlier entries shadow later
// ones with the same key.
type Table []Entry

// Resolve finds the price per m² of spec for a panel of queryLength mm.
//
// Lookup rules:
//
//	graded spec:   entry with the same grade, else the ungraded entry
//	ungraded spec: ungraded entry only
//
// The fallback to the ungraded entry happens only when no graded entry
// exists; a graded entry whose bands miss queryLength yields no price.
// Bands are matched against the requested length, not the stocked one.
func (t Table) Resolve(spec Spec, queryLength int) (float64, bool) {
	if e, ok := t.find(spec, spec.Grade); ok {
		return e.Price.At(queryLength)
	}
	if spec.Grade != "" {
		if e, ok := t.find(spec, ""); ok {
			return e.Price.At(queryLength)
		}
	}
	return 0, false
}

func (t Table) find(spec Spec, grade string) (*Entry, bool) {
	for i := range t {
		e := &t[i]
		if e.Wood == spec.Wood &&
			e.ShieldType == spec.ShieldType &&
			e.Thickness == spec.Thickness &&
			e.Grade == grade {
			return e, true
		}
	}
	return nil, false
}

// Resolve is a shorthand for Table(entries).Resolve(spec, queryLength).
func Resolve(spec Spec, queryLength int, entries []Entry) (float64, bool) {
	return Table(entries).Resolve(spec, queryLength)
}
