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

package lrucache

import "github.com/prometheus/client_golang/prometheus"

// cacheMetrics exposes the cache counters as Prometheus metrics.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
}

// withMetrics attaches registered counters to a cache under construction.
// Applied by NewWithMetrics after registration has succeeded.
func withMetrics(m *cacheMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewWithMetrics is like New but additionally registers Prometheus counters
// on reg under the given prefix. It returns an error when registration
// fails (e.g. duplicate registration), in which case no cache is created.
func NewWithMetrics[K comparable, V any](capacity int, reg prometheus.Registerer, prefix string) (*Cache[K, V], error) {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_cache_hits_total",
			Help: "Number of resolution lookups served from the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_cache_misses_total",
			Help: "Number of resolution lookups that required a table scan.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_cache_evictions_total",
			Help: "Number of cache entries evicted by the capacity policy.",
		}),
	}
	for _, c := range []prometheus.Collector{m.hits, m.misses, m.evictions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return New[K, V](capacity, withMetrics(m)), nil
}
