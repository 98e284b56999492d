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

// Package resolver implements the run-time half of the hfx engine: given an
// immutable registry.Table, it resolves exceptions (or exception types) and
// a requested media type to the best-matching handler function.
//
// # Matching
//
// A single-level lookup scans every table entry. An entry is a candidate
// iff the looked-up type is the registered type or one of its subtypes, and
// the registered media type is compatible with the requested one.
// Candidates are ordered by a total order:
//
//  1. hierarchy distance — fewer supertype steps from the looked-up type to
//     the registered type wins;
//  2. media-type specificity — with equal distance, the more specific
//     registered media type wins;
//  3. table insertion order — stable fallback for pairs the first two keys
//     cannot order. Such pairs are unreachable when the table was built by
//     registry.Build (ambiguity is rejected there), but the order must stay
//     deterministic regardless.
//
// Resolving from a live error uses the error's runtime exception type and,
// on miss, retries with each successive cause until the chain is exhausted.
//
// # Caching
//
// Per-(type, media) outcomes are kept in a bounded LRU cache (default
// capacity config.DefaultCacheCapacity), including negative outcomes, so
// repeated lookups — hit or miss — cost one cache probe. The cache is safe
// for concurrent first-writes; racing goroutines may redundantly recompute
// the same (identical) outcome, and the last write wins.
package resolver
