// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/catalog"
	"github.com/someonegg/panelmatch/httpapi"
	"github.com/someonegg/panelmatch/internal/config"
	"github.com/someonegg/panelmatch/internal/logger"
	"github.com/someonegg/panelmatch/internal/metrics"
	"github.com/someonegg/panelmatch/store"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Serve catalogs, the price list and search over HTTP",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "specify the config.yaml (environment overrides apply)",
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg, err := config.Load(ctx.String("config"))
		if err != nil {
			return err
		}
		sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return doServe(sigCtx, cfg)
	},
}

func doServe(ctx context.Context, cfg config.Config) error {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Admin.Password == "" {
		log.Warn("admin password not set, writes are disabled")
	}
	if cfg.Log.Mode == "prod" || cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	reg := metrics.NewRegistry()
	svc, err := catalog.NewService(catalog.Options{
		Store:      st,
		Authorizer: catalog.PasswordAuthorizer(cfg.Admin.Password),
		Logger:     log,
		Engine:     panelmatch.NewEngine(panelmatch.Options{Parallelism: cfg.Search.Parallelism}),
		Metrics:    reg,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: httpapi.NewRouter(httpapi.RouterConfig{
			Service:      svc,
			Logger:       log,
			Metrics:      reg,
			AllowOrigins: cfg.HTTP.AllowOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info("listening", "addr", cfg.HTTP.Addr, "store", cfg.Store.Backend)

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func openStore(ctx context.Context, cfg config.Store) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	case config.BackendRedis:
		return store.NewRedis(ctx, store.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.BackendPebble:
		return store.NewPebble(cfg.Pebble.Dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
