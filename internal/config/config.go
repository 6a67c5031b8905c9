// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the service configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendPebble = "pebble"
)

type Config struct {
	HTTP   HTTP   `yaml:"http"`
	Log    Log    `yaml:"log"`
	Store  Store  `yaml:"store"`
	Admin  Admin  `yaml:"admin"`
	Search Search `yaml:"search"`
}

type HTTP struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type Log struct {
	Mode string `yaml:"mode"` // dev | prod
}

type Store struct {
	Backend string `yaml:"backend"`
	Redis   Redis  `yaml:"redis"`
	Pebble  Pebble `yaml:"pebble"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Pebble struct {
	Dir string `yaml:"dir"`
}

type Admin struct {
	Password string `yaml:"password"`
}

type Search struct {
	Parallelism int `yaml:"parallelism"`
}

func Default() Config {
	return Config{
		HTTP:   HTTP{Addr: ":8080"},
		Log:    Log{Mode: "dev"},
		Store:  Store{Backend: BackendMemory, Pebble: Pebble{Dir: "data"}},
		Search: Search{Parallelism: 4},
	}
}

// Load reads file (optional, may be empty), then applies environment
// overrides and validates the result.
func Load(file string) (Config, error) {
	cfg := Default()

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", file, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	str(&cfg.HTTP.Addr, "PANELMATCH_HTTP_ADDR")
	str(&cfg.Log.Mode, "PANELMATCH_LOG_MODE")
	str(&cfg.Store.Backend, "PANELMATCH_STORE")
	str(&cfg.Store.Redis.Addr, "REDIS_ADDR")
	str(&cfg.Store.Redis.Password, "REDIS_PASSWORD")
	num(&cfg.Store.Redis.DB, "REDIS_DB")
	str(&cfg.Store.Pebble.Dir, "PANELMATCH_PEBBLE_DIR")
	str(&cfg.Admin.Password, "ADMIN_PASSWORD")
	num(&cfg.Search.Parallelism, "PANELMATCH_SEARCH_PARALLELISM")
}

func str(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

func num(dst *int, name string) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if i, err := strconv.Atoi(v); err == nil {
		*dst = i
	}
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("config: redis backend needs store.redis.addr")
		}
	case BackendPebble:
		if c.Store.Pebble.Dir == "" {
			return errors.New("config: pebble backend needs store.pebble.dir")
		}
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
	if c.HTTP.Addr == "" {
		return errors.New("config: empty http.addr")
	}
	if c.Search.Parallelism < 0 {
		return fmt.Errorf("config: negative search.parallelism %d", c.Search.Parallelism)
	}
	return nil
}
