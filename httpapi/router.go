// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httpapi exposes the catalog service over HTTP.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/someonegg/panelmatch/catalog"
	"github.com/someonegg/panelmatch/internal/logger"
	"github.com/someonegg/panelmatch/internal/metrics"
)

type RouterConfig struct {
	Service *catalog.Service
	Logger  *logger.Logger
	Metrics *metrics.Registry

	// Empty disables CORS.
	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Logger.With("component", "httpapi")))

	if len(cfg.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	h := &handler{svc: cfg.Service}

	router.GET("/healthcheck", healthCheck)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := router.Group("/api")
	{
		api.GET("/suppliers", h.listSuppliers)
		api.POST("/suppliers", h.changeSupplier)
		api.POST("/suppliers/search", h.search)
		api.GET("/pricing", h.getPricing)
		api.POST("/pricing", h.savePricing)
	}
	return router
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "error", c.Errors.String())
		}
		if c.Writer.Status() >= 500 {
			log.Error("request", kv...)
			return
		}
		log.Info("request", kv...)
	}
}
