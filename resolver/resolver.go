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
	"sort"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/registry"
	"dirpx.dev/hfx/resolver/internal/lrucache"
	"dirpx.dev/hfx/throwable"
)

// New wraps an immutable dispatch table in an apis.Resolver.
//
// The resolver owns its cache exclusively; callers never receive mutable
// references to either the table or the cache. New fails only when an
// option does (e.g. metrics registration) — a nil table is treated as
// empty.
func New(tbl *registry.Table, opts ...Option) (apis.Resolver, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	cache, err := s.newCache()
	if err != nil {
		return nil, err
	}

	return &resolver{
		entries: tbl.Entries(),
		cache:   cache,
	}, nil
}

// outcome is the cached result of one single-level lookup. The ok flag is a
// proper tagged variant: a cached "no match" is distinct from a key that was
// never looked up.
type outcome struct {
	handler apis.HandlerDescriptor
	ok      bool
}

// resolver is the immutable apis.Resolver implementation. The entries slice
// is a build-time snapshot in table insertion order; only the cache is
// written to after construction.
type resolver struct {
	entries []registry.Entry
	cache   *lrucache.Cache[registry.Key, outcome]
}

// HasMappings reports whether the dispatch table is non-empty.
func (r *resolver) HasMappings() bool { return len(r.entries) > 0 }

// ResolveType finds the handler for the given exception type and media
// type. Single-level lookup, no cause-chain walk.
func (r *resolver) ResolveType(t *throwable.Type, media mediatype.MediaType) (apis.HandlerDescriptor, bool) {
	if t == nil {
		return apis.HandlerDescriptor{}, false
	}
	if media.IsZero() {
		media = mediatype.Wildcard
	}
	return r.findBestMatch(t, media)
}

// Resolve finds the handler for the given raised error, walking the cause
// chain on miss. Chain links without an exception type are skipped; each
// level is looked up (and cached) independently by its own type.
func (r *resolver) Resolve(err error, media mediatype.MediaType) (apis.HandlerDescriptor, bool) {
	if media.IsZero() {
		media = mediatype.Wildcard
	}
	for cur := err; cur != nil; cur = throwable.CauseOf(cur) {
		t, ok := throwable.TypeOf(cur)
		if !ok {
			continue
		}
		if h, ok := r.findBestMatch(t, media); ok {
			return h, true
		}
	}
	return apis.HandlerDescriptor{}, false
}

// findBestMatch performs one cached single-level lookup.
func (r *resolver) findBestMatch(t *throwable.Type, media mediatype.MediaType) (apis.HandlerDescriptor, bool) {
	key := registry.Key{Exception: t, Media: media}
	if out, ok := r.cache.Get(key); ok {
		return out.handler, out.ok
	}

	cands := r.collect(t, media)
	if len(cands) == 0 {
		// Negative outcomes are cached too, so repeated misses stay cheap.
		r.cache.Put(key, outcome{})
		return apis.HandlerDescriptor{}, false
	}
	if len(cands) > 1 {
		sortCandidates(cands)
	}

	winner := cands[0].entry.Handler
	r.cache.Put(key, outcome{handler: winner, ok: true})
	return winner, true
}

// collect scans the table snapshot for entries matching (t, media). The
// result preserves table insertion order.
func (r *resolver) collect(t *throwable.Type, media mediatype.MediaType) []candidate {
	var out []candidate
	for _, e := range r.entries {
		dist, ok := t.DistanceTo(e.Key.Exception)
		if !ok {
			continue
		}
		if !e.Key.Media.IsCompatibleWith(media) {
			continue
		}
		out = append(out, candidate{entry: e, distance: dist})
	}
	return out
}

// candidate is one matching table entry together with its hierarchy
// distance from the looked-up type.
type candidate struct {
	entry    registry.Entry
	distance int
}

// sortCandidates orders candidates by the engine's total order: hierarchy
// distance, then media-type specificity, then (via stable sort) table
// insertion order.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.entry.Key.Media == b.entry.Key.Media {
			return false
		}
		return a.entry.Key.Media.IsMoreSpecific(b.entry.Key.Media)
	})
}
