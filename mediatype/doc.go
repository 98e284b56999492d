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

// Package mediatype provides the canonical, validated media-type value used
// as one half of the engine's dispatch keys.
//
// A MediaType is a small comparable value ("type/subtype" plus canonical
// parameters) supporting exactly the two comparisons the resolver needs:
//
//   - IsCompatibleWith — wildcard-aware match between a registered media
//     type and a requested one;
//   - IsMoreSpecific — partial order used as a tie-break, where a narrower
//     value ("application/json") beats a broader one ("*/*").
//
// Values are created through Parse/MustParse and are immutable afterwards.
// Two MediaType values are equal (==) iff their parsed representations are
// equal, which makes them usable directly as map-key components.
package mediatype
