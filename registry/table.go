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

import "dirpx.dev/hfx/apis"

// Entry is a single (key, handler) association in the dispatch table.
type Entry struct {
	// Key is the (exception type, media type) address.
	Key Key
	// Handler is the descriptor of the function registered under Key.
	Handler apis.HandlerDescriptor
}

// Table is the immutable dispatch table: a mapping from Key to exactly one
// handler function, built once by Build and never mutated afterwards.
//
// A Table is safe for unsynchronized concurrent reads. There is no mutation
// path: callers that need a different table build a new one.
type Table struct {
	// byKey is the lookup index.
	byKey map[Key]apis.HandlerDescriptor
	// order holds the keys in first-insertion order. Scans iterate in this
	// order so that downstream tie-breaks are deterministic.
	order []Key
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byKey)
}

// IsEmpty reports whether the table holds no mappings.
func (t *Table) IsEmpty() bool { return t.Len() == 0 }

// Get returns the handler registered under the exact key, if any.
func (t *Table) Get(k Key) (apis.HandlerDescriptor, bool) {
	if t == nil {
		return apis.HandlerDescriptor{}, false
	}
	h, ok := t.byKey[k]
	return h, ok
}

// Entries returns a snapshot of the table in first-insertion order. The
// returned slice is freshly allocated; mutating it does not affect the
// table.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Entry{Key: k, Handler: t.byKey[k]})
	}
	return out
}
