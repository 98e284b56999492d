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

import "sync/atomic"

// Statistics tracks cache effectiveness. Counters are always maintained;
// Prometheus export is layered on top when enabled.
type Statistics struct {
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func (s *Statistics) hit()   { s.hits.Add(1) }
func (s *Statistics) miss()  { s.misses.Add(1) }
func (s *Statistics) evict() { s.evictions.Add(1) }

// Hits returns the number of lookups served from the cache.
func (s *Statistics) Hits() uint64 { return s.hits.Load() }

// Misses returns the number of lookups that fell through to a table scan.
func (s *Statistics) Misses() uint64 { return s.misses.Load() }

// Evictions returns the number of entries dropped by the capacity policy.
func (s *Statistics) Evictions() uint64 { return s.evictions.Load() }
