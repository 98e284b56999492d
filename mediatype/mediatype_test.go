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
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want string // canonical String() form
	}{
		{"*/*", "*/*"},
		{"application/json", "application/json"},
		{"application/*", "application/*"},
		{"application/*+json", "application/*+json"},
		{"text/plain; charset=utf-8", "text/plain;charset=utf-8"},
		{"  Application/JSON  ", "application/json"},
	}
	for _, c := range cases {
		m, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if m.String() != c.want {
			t.Fatalf("Parse(%q).String() = %q, want %q", c.in, m.String(), c.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"application",
		"/json",
		"*/json", // wildcard type with concrete subtype
		"application/json/extra",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q): got %v, want ErrInvalid", in, err)
		}
	}
}

func TestParse_CanonicalParamsComparable(t *testing.T) {
	a := MustParse("text/plain; charset=utf-8; format=flowed")
	b := MustParse("text/plain; format=flowed; charset=utf-8")
	if a != b {
		t.Fatalf("parameter order must not affect equality: %v != %v", a, b)
	}
}

func TestIsCompatibleWith(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"*/*", "application/json", true},
		{"application/json", "*/*", true},
		{"application/*", "application/json", true},
		{"application/json", "application/*", true},
		{"application/json", "application/json", true},
		{"application/json", "text/json", false},
		{"application/json", "application/xml", false},
		{"application/*+json", "application/vnd.api+json", true},
		{"application/vnd.api+json", "application/*+json", true},
		{"application/*+json", "application/json", true},
		{"application/*+json", "application/xml", false},
		{"text/plain;charset=utf-8", "text/plain", true}, // params ignored
	}
	for _, c := range cases {
		a, b := MustParse(c.a), MustParse(c.b)
		if got := a.IsCompatibleWith(b); got != c.want {
			t.Fatalf("IsCompatibleWith(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}

	var zero MediaType
	if zero.IsCompatibleWith(Wildcard) || Wildcard.IsCompatibleWith(zero) {
		t.Fatalf("zero value must be compatible with nothing")
	}
}

func TestIsMoreSpecific(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"application/json", "*/*", true},
		{"*/*", "application/json", false},
		{"application/json", "application/*", true},
		{"application/*", "application/json", false},
		{"application/*", "*/*", true},
		{"application/json", "application/json", false},
		{"text/plain;charset=utf-8", "text/plain", true},
		{"text/plain", "text/plain;charset=utf-8", false},
		{"application/json", "text/plain", false}, // unrelated concrete
	}
	for _, c := range cases {
		a, b := MustParse(c.a), MustParse(c.b)
		if got := a.IsMoreSpecific(b); got != c.want {
			t.Fatalf("IsMoreSpecific(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestWildcardSubtypeSuffix(t *testing.T) {
	m := MustParse("application/*+json")
	if !m.IsWildcardSubtype() {
		t.Fatalf("%q must count as a wildcard subtype", m)
	}
	if MustParse("application/vnd.api+json").IsWildcardSubtype() {
		t.Fatalf("concrete suffixed subtype is not a wildcard")
	}
}

func TestTextMarshaling(t *testing.T) {
	m := MustParse("text/plain; charset=utf-8")

	data, err := m.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var back MediaType
	if err := back.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != m {
		t.Fatalf("round trip changed the value: %v != %v", back, m)
	}

	var zero MediaType
	if _, err := zero.MarshalText(); err == nil {
		t.Fatalf("zero value must not marshal")
	}

	before := back
	if err := back.UnmarshalText([]byte("not a media type")); err == nil {
		t.Fatalf("UnmarshalText must reject invalid input")
	}
	if back != before {
		t.Fatalf("failed UnmarshalText must leave the receiver unchanged")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse must panic on invalid input")
		}
	}()
	MustParse("*/json")
}
