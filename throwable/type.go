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

package throwable

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Type is a node in the exception-type hierarchy.
//
// A Type is immutable after Define and safe to share between goroutines.
// Identity is pointer identity: the engine treats two types as the same
// exception type iff they are the same *Type value.
type Type struct {
	// name is the canonical, validated type name, e.g. "io.file_not_found".
	name string
	// parent is the supertype. It is nil only for Base.
	parent *Type
	// depth is the number of supertype steps from Base. Base has depth 0.
	depth int
}

// MinNameLength and MaxNameLength define the allowed length range for a
// canonical type name. Mirrors the constraints of derrors reasons: names are
// dot-separated hierarchical identifiers built from known component names.
const (
	// MinNameLength is the minimum length for a type name.
	MinNameLength = 2

	// MaxNameLength is the maximum length for a type name.
	// 128 characters is enough even for 4 descriptive segments.
	MaxNameLength = 128
)

const (
	// nameFmt is the canonical pattern for type names: 1 to 4 dot-separated
	// segments, each starting with a lowercase letter and continuing with
	// lowercase letters, digits, or underscore.
	//
	// Examples that match:
	//
	//	"io"
	//	"io.file_not_found"
	//	"storage.pg.connect_timeout"
	//
	// Examples that DO NOT match:
	//
	//	"IO"            (uppercase)
	//	"io..file"      (empty segment)
	//	"io/file"       (slash)
	//	"1file"         (digit first)
	nameFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var nameRe = regexp.MustCompile(nameFmt)

var (
	// ErrInvalidName is returned when a type name cannot be validated.
	ErrInvalidName = errors.New("hfx: invalid throwable type name")
)

// Base is the root of the exception-type hierarchy. Every Type defined
// without an explicit parent extends Base, so Base is assignable from every
// type the engine will ever see.
var Base = &Type{name: "throwable"}

// TypeOption configures a Type during Define.
type TypeOption func(*Type)

// Extends sets the supertype of the type being defined. A nil parent keeps
// the default (Base).
func Extends(parent *Type) TypeOption {
	return func(t *Type) {
		if parent != nil {
			t.parent = parent
		}
	}
}

// Define creates a new exception type with the given canonical name.
//
// The name is normalized (trimmed, lower-cased) and validated against the
// canonical pattern. Without an Extends option the new type extends Base.
//
// Define never registers the type anywhere: uniqueness of names is a
// convention of the defining code, not a property the engine depends on.
// The engine compares types by identity only.
func Define(name string, opts ...TypeOption) (*Type, error) {
	n := normalizeName(name)
	if len(n) < MinNameLength || len(n) > MaxNameLength {
		return nil, fmt.Errorf("%w: %q: length must be %d..%d", ErrInvalidName, name, MinNameLength, MaxNameLength)
	}
	if !nameRe.MatchString(n) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	t := &Type{name: n, parent: Base}
	for _, opt := range opts {
		opt(t)
	}
	t.depth = t.parent.depth + 1
	return t, nil
}

// MustDefine is like Define but panics on invalid input. Intended for
// package-scope type definitions where an invalid name is a programmer
// error.
func MustDefine(name string, opts ...TypeOption) *Type {
	t, err := Define(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// normalizeName brings an arbitrary string closer to the canonical form:
// trim spaces, lower-case. Anything further is rejected by validation.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name returns the canonical type name.
func (t *Type) Name() string { return t.name }

// Parent returns the supertype, or nil for Base.
func (t *Type) Parent() *Type { return t.parent }

// Depth returns the number of supertype steps from Base to t.
func (t *Type) Depth() int { return t.depth }

// String implements fmt.Stringer.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// AssignableTo reports whether t is the same type as target or a subtype of
// it, i.e. whether an exception of type t may be handled by a handler
// registered for target.
func (t *Type) AssignableTo(target *Type) bool {
	if t == nil || target == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.parent {
		if cur == target {
			return true
		}
	}
	return false
}

// DistanceTo returns the number of supertype steps from t up to ancestor.
// It returns (0, true) when t == ancestor and (0, false) when ancestor is
// not on t's supertype chain.
func (t *Type) DistanceTo(ancestor *Type) (int, bool) {
	if t == nil || ancestor == nil {
		return 0, false
	}
	steps := 0
	for cur := t; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return steps, true
		}
		steps++
	}
	return 0, false
}
