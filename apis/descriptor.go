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

import "dirpx.dev/hfx/throwable"

// HandlerDescriptor describes one handler function of a container type, as
// enumerated by an external discovery collaborator.
//
// The descriptor is read-only input to the Registry Builder: it carries the
// function's identity plus its raw declaration data. hfx never calls the
// function; it only decides which descriptor a given exception resolves to.
type HandlerDescriptor struct {
	// Name uniquely identifies the handler function within the container,
	// e.g. "OrderAPI.OnStorageFailure". Two descriptors with the same Name
	// are the same function: a function inherited from an ancestor container
	// and overridden in a subtype must be enumerated under one Name so it is
	// not double-registered.
	Name string

	// Exceptions is the explicit exception coverage of the function. When
	// non-empty, it is used exactly as declared and Params is ignored.
	Exceptions []*throwable.Type

	// MediaTypes lists the declared media-type strings, e.g.
	// "application/json". Unparseable strings fail the build. When empty,
	// the coverage defaults to the wildcard ("*/*").
	MediaTypes []string

	// Params is the function's raw parameter declaration data, used as
	// fallback coverage when Exceptions is empty: every *throwable.Type
	// entry counts as a covered exception type, everything else is ignored.
	Params []any
}

// IsZero reports whether the descriptor is empty. A zero descriptor is what
// resolution calls return alongside ok == false.
func (d HandlerDescriptor) IsZero() bool {
	return d.Name == "" && d.Exceptions == nil && d.MediaTypes == nil && d.Params == nil
}
