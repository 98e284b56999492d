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

package apis

import (
	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/throwable"
)

// Resolver is an immutable, concurrency-safe view of a built dispatch table.
// It answers which handler function should process a given exception for a
// requested media type.
//
// Resolution never fails: absence of a match is a first-class outcome
// (ok == false), and the caller decides the fallback (delegate to a more
// general handler, propagate the exception unresolved, etc.).
type Resolver interface {
	// HasMappings reports whether the dispatch table is non-empty.
	HasMappings() bool

	// ResolveType finds the handler for the given exception type and media
	// type. Single-level lookup, no cause-chain walk — useful when no live
	// exception instance exists (e.g. tooling). Pass mediatype.Wildcard
	// when the media type does not matter.
	ResolveType(t *throwable.Type, media mediatype.MediaType) (HandlerDescriptor, bool)

	// Resolve finds the handler for the given raised error, using its
	// runtime exception type and walking the cause chain on miss. Links of
	// the chain that carry no exception type are skipped.
	Resolve(err error, media mediatype.MediaType) (HandlerDescriptor, bool)

	// Explain returns a human-readable trace of a single-level lookup:
	// the candidates considered, their ordering keys, and the winner.
	// Intended for inspection and tests, not for stable machine parsing.
	Explain(t *throwable.Type, media mediatype.MediaType) string
}

// TypedError is implemented by errors that carry an exception type within
// the throwable hierarchy. The resolver keys on this contract; everything
// else in a cause chain is skipped.
type TypedError interface {
	error

	// ThrowableType returns the exception type. Must be non-nil.
	ThrowableType() *throwable.Type
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis
// keeps the cause-chain contract explicit for errors that want to separate
// "wrapped for context" from "caused by".
//
// Implementations SHOULD return the direct, immediate cause of the error,
// or nil when there is none.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this one. May
	// return nil.
	Cause() error
}
