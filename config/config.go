/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config carries the read-only tuning knobs of the hfx engine.
//
// The engine has exactly one tunable: the capacity of the resolution cache.
// Config exists as its own package so that embedding binaries can load it
// from YAML alongside their own settings and hand it to resolver.New via
// resolver.WithConfig.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCacheCapacity is the default bound of the resolution cache.
	// 24 entries cover the hot set of typical containers (a handful of
	// exception types times a few media types) while keeping eviction
	// cheap.
	DefaultCacheCapacity = 24
)

// Config holds the engine settings. It is passed by value and treated as
// immutable by the engine.
type Config struct {
	// CacheCapacity bounds the resolution cache. Non-positive values fall
	// back to DefaultCacheCapacity.
	CacheCapacity int `yaml:"cache_capacity"`
}

// DefaultConfig is the configuration used when none is provided.
func DefaultConfig() Config {
	return Config{CacheCapacity: DefaultCacheCapacity}
}

// NewConfig constructs a Config from the given options.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()
	return cfg
}

// Option is a functional option that mutates a Config during construction.
type Option func(*Config)

// WithCacheCapacity sets the resolution cache capacity. A non-positive
// value resets to the default.
func WithCacheCapacity(n int) Option {
	return func(c *Config) {
		c.CacheCapacity = n
	}
}

// Load parses a YAML document into a Config, applying defaults for absent
// fields.
func Load(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("hfx: parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize repairs out-of-range values in place.
func (c *Config) normalize() {
	if c.CacheCapacity <= 0 {
		c.CacheCapacity = DefaultCacheCapacity
	}
}
