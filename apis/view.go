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

// ResolutionView is a minimal, serializable representation of a single
// resolution outcome.
//
// This is *not* an internal engine type — it is the shape we are comfortable
// exposing over the wire or logging. Keeping it here (in apis) allows both
// the HTTP and gRPC adapters to share the same struct.
type ResolutionView struct {
	// Matched reports whether a handler was found.
	Matched bool `json:"matched"`

	// Handler is the resolved handler function name. Empty when no handler
	// matched.
	Handler string `json:"handler,omitempty"`

	// Exception is the canonical name of the exception type the lookup was
	// performed for (the runtime type of the raised error, or the type
	// passed to ResolveType).
	Exception string `json:"exception,omitempty"`

	// Media is the canonical form of the requested media type.
	Media string `json:"media,omitempty"`

	// Message is an optional human-friendly message, typically the raised
	// error's own text.
	Message string `json:"message,omitempty"`
}
