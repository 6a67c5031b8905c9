// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	Searches      *prometheus.CounterVec // by outcome
	SearchLatency prometheus.Histogram
	Results       prometheus.Histogram
	Unpriced      prometheus.Counter
	AdminWrites   *prometheus.CounterVec // by kind, outcome
	StoreErrors   *prometheus.CounterVec // by op
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "panelmatch_searches_total",
		Help: "Catalog searches by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "panelmatch_search_seconds",
		Help:    "Catalog search latency including store reads.",
		Buckets: prometheus.DefBuckets,
	})
	results := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "panelmatch_search_results",
		Help:    "Suppliers returned per search.",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
	unpriced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "panelmatch_unpriced_results_total",
		Help: "Search results without a resolved price.",
	})
	adminWrites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "panelmatch_admin_writes_total",
		Help: "Administrative catalog and price list writes.",
	}, []string{"kind", "outcome"})
	storeErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "panelmatch_store_errors_total",
		Help: "Failed store operations.",
	}, []string{"op"})

	r.MustRegister(searches, latency, results, unpriced, adminWrites, storeErrors)
	return &Registry{
		reg:           r,
		Searches:      searches,
		SearchLatency: latency,
		Results:       results,
		Unpriced:      unpriced,
		AdminWrites:   adminWrites,
		StoreErrors:   storeErrors,
	}
}

func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
