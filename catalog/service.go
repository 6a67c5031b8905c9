// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog serves supplier catalogs and the price list from a
// store and runs searches over them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/internal/logger"
	"github.com/someonegg/panelmatch/internal/metrics"
	"github.com/someonegg/panelmatch/pricing"
	"github.com/someonegg/panelmatch/store"
)

type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var ErrBadAction = errors.New("unknown supplier action")

type Options struct {
	Store      store.Store
	Authorizer Authorizer
	Logger     *logger.Logger

	// Optional.
	Engine  panelmatch.Engine
	Metrics *metrics.Registry
	Now     func() time.Time
}

type Service struct {
	store   store.Store
	auth    Authorizer
	engine  panelmatch.Engine
	log     *logger.Logger
	metrics *metrics.Registry
	now     func() time.Time

	// serializes read-modify-write of the supplier list
	writeMu sync.Mutex
}

func NewService(opts Options) (*Service, error) {
	if opts.Store == nil {
		return nil, errors.New("catalog: store required")
	}
	if opts.Authorizer == nil {
		return nil, errors.New("catalog: authorizer required")
	}
	if opts.Logger == nil {
		return nil, errors.New("catalog: logger required")
	}
	s := &Service{
		store:   opts.Store,
		auth:    opts.Authorizer,
		engine:  opts.Engine,
		log:     opts.Logger.With("service", "catalog"),
		metrics: opts.Metrics,
		now:     opts.Now,
	}
	if s.engine == nil {
		s.engine = panelmatch.NewEngine(panelmatch.Options{})
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// Suppliers lists all suppliers. An empty store is seeded with the
// default supplier. When the store cannot be read the default supplier
// is returned instead of an error.
func (s *Service) Suppliers(ctx context.Context) ([]panelmatch.Supplier, error) {
	suppliers, err := s.store.Suppliers(ctx)
	if err != nil {
		s.storeError("suppliers", err)
		return []panelmatch.Supplier{DefaultSupplier()}, nil
	}
	if len(suppliers) > 0 {
		return suppliers, nil
	}

	def := DefaultSupplier()
	def.CreatedAt = s.timestamp()
	def.UpdatedAt = def.CreatedAt
	suppliers = []panelmatch.Supplier{def}
	if err := s.store.SaveSuppliers(ctx, suppliers); err != nil {
		s.storeError("seed_suppliers", err)
	} else {
		s.log.Info("seeded default supplier", "supplier_id", def.ID)
	}
	return suppliers, nil
}

// ChangeSupplier applies an add, update or delete and returns the
// resulting list. Updating or deleting an unknown id changes nothing.
func (s *Service) ChangeSupplier(ctx context.Context, credential string, action Action, sup panelmatch.Supplier) ([]panelmatch.Supplier, error) {
	if err := s.auth.Authorize(ctx, credential); err != nil {
		s.adminWrite("supplier", "denied")
		s.log.Warn("supplier change denied", "action", action, "supplier_id", sup.ID)
		return nil, err
	}

	switch action {
	case ActionAdd, ActionUpdate, ActionDelete:
	default:
		s.adminWrite("supplier", "bad_action")
		return nil, fmt.Errorf("%w: %q", ErrBadAction, action)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	suppliers, err := s.store.Suppliers(ctx)
	if err != nil {
		s.storeError("suppliers", err)
		return nil, err
	}

	now := s.timestamp()
	switch action {
	case ActionAdd:
		if sup.ID == "" {
			sup.ID = "supplier-" + uuid.NewString()
		}
		if sup.Materials == nil {
			sup.Materials = []panelmatch.Material{}
		}
		sup.CreatedAt, sup.UpdatedAt = now, now
		suppliers = append(suppliers, sup)
	case ActionUpdate:
		for i := range suppliers {
			if suppliers[i].ID == sup.ID {
				if sup.CreatedAt == "" {
					sup.CreatedAt = suppliers[i].CreatedAt
				}
				sup.UpdatedAt = now
				suppliers[i] = sup
				break
			}
		}
	case ActionDelete:
		kept := suppliers[:0]
		for _, cur := range suppliers {
			if cur.ID != sup.ID {
				kept = append(kept, cur)
			}
		}
		suppliers = kept
	}

	if err := s.store.SaveSuppliers(ctx, suppliers); err != nil {
		s.storeError("save_suppliers", err)
		return nil, err
	}
	s.adminWrite("supplier", "ok")
	s.log.Info("supplier changed", "action", action, "supplier_id", sup.ID, "suppliers", len(suppliers))
	if suppliers == nil {
		suppliers = []panelmatch.Supplier{}
	}
	return suppliers, nil
}

// Pricing returns the stored price list completed with defaults, or the
// defaults when the store cannot be read.
func (s *Service) Pricing(ctx context.Context) pricing.Config {
	stored, err := s.store.Pricing(ctx)
	if err != nil {
		s.storeError("pricing", err)
		return pricing.Default()
	}
	return pricing.Merge(stored)
}

// SavePricing stores cfg as is. With verifyOnly only the credential is
// checked.
func (s *Service) SavePricing(ctx context.Context, credential string, cfg pricing.Config, verifyOnly bool) error {
	if err := s.auth.Authorize(ctx, credential); err != nil {
		s.adminWrite("pricing", "denied")
		s.log.Warn("pricing change denied")
		return err
	}
	if verifyOnly {
		return nil
	}
	if err := s.store.SavePricing(ctx, cfg); err != nil {
		s.storeError("save_pricing", err)
		return err
	}
	s.adminWrite("pricing", "ok")
	s.log.Info("pricing saved", "material_prices", len(cfg.MaterialPrices))
	return nil
}

// Search runs q over the stored catalogs and price list. Unlike the
// listing calls, store failures are returned.
func (s *Service) Search(ctx context.Context, q panelmatch.Query) ([]panelmatch.Result, error) {
	start := s.now()
	results, err := s.search(ctx, q)

	outcome := "ok"
	switch {
	case errors.Is(err, panelmatch.ErrInvalidQuery):
		outcome = "invalid"
	case err != nil:
		outcome = "error"
	}
	if s.metrics != nil {
		s.metrics.Searches.WithLabelValues(outcome).Inc()
		s.metrics.SearchLatency.Observe(s.now().Sub(start).Seconds())
	}
	if err != nil {
		s.log.Warn("search failed", "length", q.Length, "width", q.Width, "error", err)
		return nil, err
	}

	unpriced := 0
	for _, r := range results {
		if r.PricePerM2 == nil {
			unpriced++
		}
	}
	if s.metrics != nil {
		s.metrics.Results.Observe(float64(len(results)))
		s.metrics.Unpriced.Add(float64(unpriced))
	}
	s.log.Debug("search done",
		"length", q.Length, "width", q.Width, "smaller", q.IncludeSmaller,
		"results", len(results), "unpriced", unpriced)
	return results, nil
}

func (s *Service) search(ctx context.Context, q panelmatch.Query) ([]panelmatch.Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	suppliers, err := s.store.Suppliers(ctx)
	if err != nil {
		s.storeError("suppliers", err)
		return nil, err
	}
	stored, err := s.store.Pricing(ctx)
	if err != nil {
		s.storeError("pricing", err)
		return nil, err
	}
	return s.engine.Search(q, suppliers, pricing.Merge(stored))
}

func (s *Service) storeError(op string, err error) {
	if s.metrics != nil {
		s.metrics.StoreErrors.WithLabelValues(op).Inc()
	}
	s.log.Error("store failure", "op", op, "error", err)
}

func (s *Service) adminWrite(kind, outcome string) {
	if s.metrics != nil {
		s.metrics.AdminWrites.WithLabelValues(kind, outcome).Inc()
	}
}
