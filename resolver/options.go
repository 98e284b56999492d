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

package resolver

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/hfx/config"
	"dirpx.dev/hfx/registry"
	"dirpx.dev/hfx/resolver/internal/lrucache"
)

// Option configures the resolver at construction time.
type Option func(*settings)

// settings accumulates option state before the resolver is frozen.
type settings struct {
	cfg        config.Config
	promReg    prometheus.Registerer
	promPrefix string
}

func defaultSettings() settings {
	return settings{cfg: config.DefaultConfig()}
}

// newCache builds the resolution cache according to the settings.
func (s settings) newCache() (*lrucache.Cache[registry.Key, outcome], error) {
	if s.promReg != nil {
		return lrucache.NewWithMetrics[registry.Key, outcome](s.cfg.CacheCapacity, s.promReg, s.promPrefix)
	}
	return lrucache.New[registry.Key, outcome](s.cfg.CacheCapacity), nil
}

// WithConfig applies an engine configuration (cache capacity).
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		if cfg.CacheCapacity > 0 {
			s.cfg.CacheCapacity = cfg.CacheCapacity
		}
	}
}

// WithCacheCapacity bounds the resolution cache. Shorthand for WithConfig
// with only the capacity set; non-positive values are ignored.
func WithCacheCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.cfg.CacheCapacity = n
		}
	}
}

// WithMetrics exposes cache hit/miss/eviction counters on the given
// Prometheus registerer under <prefix>_cache_*. Registration failures
// surface as an error from New.
func WithMetrics(reg prometheus.Registerer, prefix string) Option {
	return func(s *settings) {
		s.promReg = reg
		s.promPrefix = prefix
	}
}
