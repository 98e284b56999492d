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
	"fmt"
	"strings"

	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/throwable"
)

// Explain produces a textual trace of a single-level lookup for the given
// exception type and media type: every candidate with its ordering keys, in
// final order, followed by the winner.
//
// Example output:
//
//	exception="io.file_not_found" media="application/json"
//	candidates: 2
//	  1. handler="OnFile" exception="io.file_not_found" media="application/json" distance=0
//	  2. handler="OnIO" exception="io" media="*/*" distance=1
//	match: handler="OnFile"
//
// Explain always rescans the table (the cache is not consulted), so its
// output is independent of lookup history. It is a diagnostic tool, not a
// stable machine format.
func (r *resolver) Explain(t *throwable.Type, media mediatype.MediaType) string {
	if media.IsZero() {
		media = mediatype.Wildcard
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "exception=%q media=%q\n", t, media)

	if t == nil {
		b.WriteString("candidates: 0\nmatch: none")
		return b.String()
	}

	cands := r.collect(t, media)
	if len(cands) > 1 {
		sortCandidates(cands)
	}

	_, _ = fmt.Fprintf(&b, "candidates: %d\n", len(cands))
	for i, c := range cands {
		_, _ = fmt.Fprintf(&b, "  %d. handler=%q exception=%q media=%q distance=%d\n",
			i+1, c.entry.Handler.Name, c.entry.Key.Exception, c.entry.Key.Media, c.distance)
	}

	if len(cands) == 0 {
		b.WriteString("match: none")
	} else {
		_, _ = fmt.Fprintf(&b, "match: handler=%q", cands[0].entry.Handler.Name)
	}
	return b.String()
}
