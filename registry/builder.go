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
	"errors"
	"fmt"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/throwable"
)

var (
	// ErrNoExceptionTypes is returned when a handler function declares no
	// exception types and none can be derived from its parameters.
	ErrNoExceptionTypes = errors.New("hfx: no exception types mapped to handler")

	// ErrInvalidMediaType is returned when a declared media-type string
	// cannot be parsed.
	ErrInvalidMediaType = errors.New("hfx: invalid media type declared on handler")

	// ErrAmbiguousMapping is returned when two distinct handler functions
	// claim the same (exception type, media type) key.
	ErrAmbiguousMapping = errors.New("hfx: ambiguous handler mapping")
)

// Build constructs an immutable Table from the given handler descriptors.
//
// Build is a pure function of its input: it either returns a fully valid
// table or the first configuration error it encounters. A partially built
// table is never observable.
//
// Build process per descriptor:
//
//  1. Determine exception coverage (explicit set, else throwable-typed
//     parameters). Empty coverage fails with ErrNoExceptionTypes.
//  2. Parse declared media types; failure is ErrInvalidMediaType. An empty
//     declaration defaults to mediatype.Wildcard.
//  3. Insert the cross product of both sets. A key already owned by a
//     different function (by Name) fails with ErrAmbiguousMapping;
//     re-insertion by the same function is ignored.
func Build(descriptors []apis.HandlerDescriptor) (*Table, error) {
	t := &Table{byKey: make(map[Key]apis.HandlerDescriptor, len(descriptors))}

	for _, d := range descriptors {
		excs := exceptionCoverage(d)
		if len(excs) == 0 {
			return nil, fmt.Errorf("%w: %q declares no exception types and has no throwable-typed parameters", ErrNoExceptionTypes, d.Name)
		}

		medias, err := mediaCoverage(d)
		if err != nil {
			return nil, err
		}

		for _, exc := range excs {
			for _, m := range medias {
				if err := insert(t, Key{Exception: exc, Media: m}, d); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// exceptionCoverage returns the exception types a descriptor covers: the
// explicit declaration when present, otherwise every throwable-typed
// parameter. Duplicate types collapse to one.
func exceptionCoverage(d apis.HandlerDescriptor) []*throwable.Type {
	var out []*throwable.Type
	seen := make(map[*throwable.Type]struct{})

	add := func(t *throwable.Type) {
		if t == nil {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	if len(d.Exceptions) > 0 {
		for _, t := range d.Exceptions {
			add(t)
		}
		return out
	}

	// Fallback: scan the raw parameter declaration for throwable types.
	for _, p := range d.Params {
		if t, ok := p.(*throwable.Type); ok {
			add(t)
		}
	}
	return out
}

// mediaCoverage parses the declared media-type strings, defaulting to the
// wildcard when nothing was declared.
func mediaCoverage(d apis.HandlerDescriptor) ([]mediatype.MediaType, error) {
	if len(d.MediaTypes) == 0 {
		return []mediatype.MediaType{mediatype.Wildcard}, nil
	}
	out := make([]mediatype.MediaType, 0, len(d.MediaTypes))
	for _, raw := range d.MediaTypes {
		m, err := mediatype.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q on %q: %v", ErrInvalidMediaType, raw, d.Name, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// insert adds (k -> d) to the table under construction. Functions are
// compared by Name: the same function may claim a key any number of times
// (e.g. because two of its parameter types expanded to the same key), a
// different function may not.
func insert(t *Table, k Key, d apis.HandlerDescriptor) error {
	if old, ok := t.byKey[k]; ok {
		if old.Name != d.Name {
			return fmt.Errorf("%w: [%s]: {%q, %q}", ErrAmbiguousMapping, k, old.Name, d.Name)
		}
		return nil
	}
	t.byKey[k] = d
	t.order = append(t.order, k)
	return nil
}
