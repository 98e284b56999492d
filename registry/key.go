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

package registry

import (
	"fmt"

	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/throwable"
)

// Key is the sole addressing key of the dispatch table: one exception type
// paired with one media type.
//
// Key is a comparable value. Two keys are equal iff the exception types are
// identical (*throwable.Type pointer identity) and the media types are equal
// by parsed representation.
type Key struct {
	// Exception is the registered exception type.
	Exception *throwable.Type

	// Media is the registered media type.
	Media mediatype.MediaType
}

// String implements fmt.Stringer; the format is used in build errors and in
// Explain traces.
func (k Key) String() string {
	return fmt.Sprintf("exception=%q media=%q", k.Exception, k.Media)
}
