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

package mediatype

import (
	"encoding"
	"errors"
	"fmt"
	"mime"
	"sort"
	"strings"
)

// MediaType is the canonical, parsed representation of a media type.
//
// The zero value is invalid ("not provided"); use Parse or MustParse to
// obtain a valid value, or Wildcard for "match anything". MediaType is a
// comparable value type: == compares the parsed representation, so it can be
// embedded directly in map keys.
type MediaType struct {
	// typ is the primary type, e.g. "application", or "*".
	typ string
	// sub is the subtype, e.g. "json", "*", or "*+json".
	sub string
	// params is the canonical parameter encoding: "k=v" pairs sorted by
	// key and joined with ";". Empty when there are no parameters.
	params string
}

var (
	// ErrInvalid is returned when a string cannot be parsed or validated
	// as a media type.
	ErrInvalid = errors.New("hfx: invalid media type")
)

// Ensure MediaType implements encoding.TextMarshaler / TextUnmarshaler so it
// can be embedded into config or API structs.
var (
	_ encoding.TextMarshaler   = (*MediaType)(nil)
	_ encoding.TextUnmarshaler = (*MediaType)(nil)
)

// Wildcard is the "match anything" media type ("*/*"). It is the default
// coverage for handler functions that declare no media types, and the
// default request value for resolution calls that do not care.
var Wildcard = MediaType{typ: "*", sub: "*"}

// Parse takes a media-type string, normalizes it and validates it.
// On success it returns a canonical MediaType value.
//
// Accepted forms:
//
//	"*/*"
//	"application/json"
//	"application/*"
//	"application/*+json"
//	"text/plain; charset=utf-8"
//
// Rejected forms include empty strings, missing slashes, empty components,
// and a wildcard primary type with a concrete subtype ("*/json").
func Parse(s string) (MediaType, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return MediaType{}, fmt.Errorf("%w: empty string", ErrInvalid)
	}

	mt, params, err := mime.ParseMediaType(trimmed)
	if err != nil {
		return MediaType{}, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}

	typ, sub, ok := strings.Cut(mt, "/")
	if !ok || typ == "" || sub == "" {
		return MediaType{}, fmt.Errorf("%w: %q: expected type/subtype", ErrInvalid, s)
	}
	if typ == "*" && sub != "*" {
		return MediaType{}, fmt.Errorf("%w: %q: wildcard type with concrete subtype", ErrInvalid, s)
	}

	return MediaType{typ: typ, sub: sub, params: canonicalParams(params)}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// hard-coded media types in declarations and tests.
func MustParse(s string) MediaType {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// canonicalParams encodes a parameter map deterministically: keys sorted,
// "k=v" pairs joined with ";". Deterministic encoding is what makes
// MediaType comparable by ==.
func canonicalParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// Type returns the primary type, e.g. "application".
func (m MediaType) Type() string { return m.typ }

// Subtype returns the subtype, e.g. "json".
func (m MediaType) Subtype() string { return m.sub }

// IsZero reports whether m is the invalid zero value.
func (m MediaType) IsZero() bool { return m.typ == "" }

// IsWildcardType reports whether the primary type is "*".
func (m MediaType) IsWildcardType() bool { return m.typ == "*" }

// IsWildcardSubtype reports whether the subtype is "*" or a suffix wildcard
// like "*+json".
func (m MediaType) IsWildcardSubtype() bool {
	return m.sub == "*" || strings.HasPrefix(m.sub, "*+")
}

// subtypeSuffix returns the part of the subtype after "+", or "".
func (m MediaType) subtypeSuffix() string {
	if i := strings.LastIndexByte(m.sub, '+'); i >= 0 {
		return m.sub[i+1:]
	}
	return ""
}

// IsCompatibleWith reports whether m and other denote overlapping media
// types, ignoring parameters. Compatibility is symmetric: a registered
// "application/*" is compatible with a requested "application/json" and
// vice versa. The zero value is compatible with nothing.
func (m MediaType) IsCompatibleWith(other MediaType) bool {
	if m.IsZero() || other.IsZero() {
		return false
	}
	if m.IsWildcardType() || other.IsWildcardType() {
		return true
	}
	if m.typ != other.typ {
		return false
	}
	if m.sub == other.sub {
		return true
	}
	if m.IsWildcardSubtype() || other.IsWildcardSubtype() {
		if m.sub == "*" || other.sub == "*" {
			return true
		}
		// Suffix wildcards: "*+json" overlaps "vnd.a+json".
		ms, os := m.subtypeSuffix(), other.subtypeSuffix()
		if m.IsWildcardSubtype() && ms != "" {
			return ms == other.sub || ms == os
		}
		if other.IsWildcardSubtype() && os != "" {
			return os == m.sub || os == ms
		}
	}
	return false
}

// IsMoreSpecific reports whether m is strictly more specific than other:
// a concrete type beats a wildcard type, a concrete subtype beats a
// wildcard subtype, and with equal type/subtype the value with more
// parameters wins. Unrelated concrete values are not ordered.
func (m MediaType) IsMoreSpecific(other MediaType) bool {
	if m.IsWildcardType() && !other.IsWildcardType() {
		return false
	}
	if !m.IsWildcardType() && other.IsWildcardType() {
		return true
	}
	if m.IsWildcardSubtype() && !other.IsWildcardSubtype() {
		return false
	}
	if !m.IsWildcardSubtype() && other.IsWildcardSubtype() {
		return true
	}
	if m.typ == other.typ && m.sub == other.sub {
		return m.paramCount() > other.paramCount()
	}
	return false
}

// paramCount returns the number of parameters encoded in m.
func (m MediaType) paramCount() int {
	if m.params == "" {
		return 0
	}
	return strings.Count(m.params, ";") + 1
}

// String returns the canonical textual form, e.g.
// "text/plain;charset=utf-8".
func (m MediaType) String() string {
	if m.IsZero() {
		return ""
	}
	if m.params == "" {
		return m.typ + "/" + m.sub
	}
	return m.typ + "/" + m.sub + ";" + m.params
}

// MarshalText encodes the media type as its canonical textual form.
// The zero value cannot be marshaled.
func (m MediaType) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return nil, fmt.Errorf("%w: cannot marshal zero value", ErrInvalid)
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a media type from text. On failure the receiver is
// left unchanged.
func (m *MediaType) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
