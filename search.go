// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panelmatch

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/someonegg/panelmatch/pricing"
)

type Options struct {
	// Parallelism bounds how many suppliers are evaluated at once.
	// Zero or one means sequential.
	Parallelism int
}

type engine struct {
	parallel int
}

type winner struct {
	Candidate
	owner *Supplier
}

func NewEngine(opts Options) Engine {
	return engine{parallel: opts.Parallelism}
}

// Search runs q over suppliers sequentially. See Engine.
func Search(q Query, suppliers []Supplier, prices pricing.Config) ([]Result, error) {
	return engine{}.Search(q, suppliers, prices)
}

// Validate reports whether q satisfies the search preconditions.
func (q *Query) Validate() error {
	if q.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidQuery, q.Length)
	}
	if q.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidQuery, q.Width)
	}
	for _, t := range q.Thicknesses {
		if t <= 0 {
			return fmt.Errorf("%w: thickness must be positive, got %d", ErrInvalidQuery, t)
		}
	}
	return nil
}

// Search returns at most one result per supplier, best first. Suppliers
// without usable material are left out. Inputs are never modified.
func (e engine) Search(q Query, suppliers []Supplier, prices pricing.Config) ([]Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	table := prices.Table()
	picks := make([]Candidate, len(suppliers))
	found := make([]bool, len(suppliers))

	if e.parallel > 1 && len(suppliers) > 1 {
		var g errgroup.Group
		g.SetLimit(e.parallel)
		for i := range suppliers {
			i := i
			g.Go(func() error {
				picks[i], found[i] = pickSupplier(&q, &suppliers[i], table)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range suppliers {
			picks[i], found[i] = pickSupplier(&q, &suppliers[i], table)
		}
	}

	winners := make([]winner, 0, len(suppliers))
	for i := range suppliers {
		if found[i] {
			winners = append(winners, winner{picks[i], &suppliers[i]})
		}
	}
	sort.SliceStable(winners, func(i, j int) bool {
		return compare(&winners[i].Candidate, &winners[j].Candidate) < 0
	})

	results := make([]Result, 0, len(winners))
	for _, w := range winners {
		results = append(results, Result{
			Supplier:   w.owner.Name,
			SupplierID: w.owner.ID,
			Material:   w.Material,
			MatchType:  w.MatchType,
			SellPrice:  w.SellPrice,
			Markup:     w.Markup,
			PricePerM2: w.PricePerM2,
		})
	}
	return results, nil
}

func pickSupplier(q *Query, s *Supplier, table pricing.Table) (Candidate, bool) {
	pool := filterMaterials(q, s.Materials)
	if len(pool) == 0 {
		return Candidate{}, false
	}

	cands := Classify(pool, q.Length, q.Width, q.IncludeSmaller).Candidates(q.Length, q.Width)
	if len(cands) == 0 {
		cands = Fallback(pool, q.Length, q.Width)
	}

	for i := range cands {
		priceCandidate(&cands[i], q, table)
	}
	return best(cands)
}

func filterMaterials(q *Query, materials []Material) []Material {
	pool := make([]Material, 0, len(materials))
	for _, m := range materials {
		if len(q.Woods) > 0 && !containsString(q.Woods, m.Wood) {
			continue
		}
		if len(q.Thicknesses) > 0 && !containsInt(q.Thicknesses, m.Thickness) {
			continue
		}
		if len(q.ShieldTypes) > 0 && !containsString(q.ShieldTypes, m.ShieldType) {
			continue
		}
		// an active grade filter drops ungraded materials
		if len(q.Grades) > 0 && (m.Grade == "" || !containsString(q.Grades, m.Grade)) {
			continue
		}
		pool = append(pool, m)
	}
	return pool
}

// priceCandidate sells the requested size, not the stocked one.
func priceCandidate(c *Candidate, q *Query, table pricing.Table) {
	c.SellPrice, c.Markup, c.PricePerM2 = 0, 0, nil

	perM2, ok := table.Resolve(c.Material.spec(), q.Length)
	if !ok || perM2 == 0 {
		return
	}

	area := float64(q.Length) * float64(q.Width) / 1000000
	c.SellPrice = roundHalfUp(area * perM2)
	c.PricePerM2 = &perM2

	if purchase := c.Material.Price; purchase > 0 {
		c.Markup = roundHalfUp((float64(c.SellPrice) - purchase) / purchase * 100)
	}
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
