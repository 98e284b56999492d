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

// Package hfx resolves raised exceptions to the handler functions declared
// for them.
//
// A container type (an API object, a controller, a service facade) declares
// zero or more handler functions. Each handler function covers one or more
// exception types and one or more media types. hfx answers the question
// "which handler function should process this exception for this media
// type?" — deterministically, concurrently, and without ever invoking the
// handler itself.
//
// # Model
//
// hfx splits the problem into two phases, mirroring the rest of the dirpx
// resolution libraries (derrors/mapper, rfx):
//
//   - Build time. registry.Build consumes a sequence of
//     apis.HandlerDescriptor values (produced by an external discovery
//     collaborator) and expands each declaration into (exception type ×
//     media type) keys. The result is an immutable registry.Table. Invalid
//     or ambiguous declarations fail the build — a resolver can never be
//     constructed in a bad state.
//
//   - Run time. resolver.New wraps the table in an apis.Resolver. Lookups
//     scan the table for registered entries whose exception type is the
//     same as, or an ancestor of, the looked-up type and whose media type
//     is compatible with the requested one. Ties are broken by hierarchy
//     distance (closer wins), then media-type specificity (narrower wins),
//     then table insertion order. Resolving from a live error walks its
//     cause chain until a level matches. Per-(type, media) outcomes —
//     including "no match" — are kept in a bounded LRU cache.
//
// Exception types themselves are modeled by the throwable package: an
// explicit Define/Extends taxonomy with validated names, since Go has no
// class hierarchy to introspect. Media types are modeled by the mediatype
// package as opaque comparable values.
//
// # Usage
//
//	var (
//		ErrIO   = throwable.MustDefine("io")
//		ErrFile = throwable.MustDefine("io.file_not_found", throwable.Extends(ErrIO))
//	)
//
//	res, err := hfx.New([]apis.HandlerDescriptor{
//		{Name: "OnIO", Exceptions: []*throwable.Type{ErrIO}},
//		{Name: "OnFile", Exceptions: []*throwable.Type{ErrFile},
//			MediaTypes: []string{"application/json"}},
//	})
//	if err != nil {
//		// a declaration is invalid or ambiguous — fix it, do not retry
//	}
//
//	h, ok := res.Resolve(ErrFile.New("gone"), mediatype.MustParse("application/json"))
//	// ok == true, h.Name == "OnFile"
//
// Resolution never returns an error: absence of a match is an explicit
// first-class outcome (ok == false) and the caller decides the fallback.
//
// The httpx and grpcx packages adapt the resolver to transport edges; the
// actual invocation of a resolved handler stays with the caller.
package hfx
