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

// Package lrucache provides the bounded, thread-safe LRU cache backing the
// resolver's per-(exception type, media type) lookup amortization.
//
// The cache is deliberately small: Get, Put, Len, and always-on statistics
// with optional Prometheus counters. It guarantees that readers never
// observe a partially written entry, but it does not provide compute-once
// semantics — racing writers for the same key simply overwrite each other,
// which is safe because the resolver always computes identical values for a
// given key.
package lrucache

import (
	"container/list"
	"sync"
)

// entry is a single key/value pair kept in the recency list.
type entry[K comparable, V any] struct {
	key K
	val V
}

// Cache is a thread-safe LRU cache with a fixed capacity. It evicts the
// least recently used entry when the capacity is exceeded.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List // front = most recently used
	stats    *Statistics
	metrics  *cacheMetrics
}

// Option configures a Cache at construction time.
type Option func(*options)

type options struct {
	metrics *cacheMetrics
}

// New creates an LRU cache holding at most capacity entries. A non-positive
// capacity is treated as 1 so that the cache always admits the entry it is
// asked to store.
func New[K comparable, V any](capacity int, opts ...Option) *Cache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		stats:    &Statistics{},
		metrics:  o.metrics,
	}
}

// Get retrieves the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		c.stats.miss()
		if c.metrics != nil {
			c.metrics.misses.Inc()
		}
		return zero, false
	}

	c.order.MoveToFront(el)
	c.stats.hit()
	if c.metrics != nil {
		c.metrics.hits.Inc()
	}
	return el.Value.(*entry[K, V]).val, true
}

// Put stores the value under key and marks it as recently used, evicting the
// least recently used entry when the capacity is exceeded. The last write
// for a given key wins.
func (c *Cache[K, V]) Put(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).val = val
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, val: val})
	if len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// evictOldest removes the least recently used entry. Caller holds c.mu.
func (c *Cache[K, V]) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry[K, V]).key)
	c.stats.evict()
	if c.metrics != nil {
		c.metrics.evictions.Inc()
	}
}

// Len returns the current number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the configured maximum number of entries.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Stats returns the cache statistics. Always non-nil.
func (c *Cache[K, V]) Stats() *Statistics { return c.stats }
