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
)

// Throwable is a raised exception: a Type plus per-occurrence data.
//
// It carries:
//   - Type: the exception type within the hierarchy (required);
//   - Message: human-oriented description (what went wrong);
//   - Details: arbitrary key/value payload (for logging / responses);
//   - Cause: wrapped underlying error.
//
// All mutation helpers (WithX) return a shallow copy, so Throwable instances
// can be safely shared and modified in a functional style.
type Throwable struct {
	typ     *Type
	message string
	details map[string]any
	cause   error
}

// New creates a Throwable of type t.
//
// Usage:
//
//	return ErrFile.New("config not found",
//	    throwable.WithCause(err),
//	    throwable.WithDetail("path", p),
//	)
//
// A nil type is replaced by Base so that a raised exception always has a
// position in the hierarchy.
func (t *Type) New(msg string, opts ...Option) *Throwable {
	if t == nil {
		t = Base
	}
	e := &Throwable{typ: t, message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Wrap creates a Throwable of type t with the given cause attached.
// Shorthand for t.New(msg, WithCause(cause)).
func (t *Type) Wrap(cause error, msg string) *Throwable {
	return t.New(msg, WithCause(cause))
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<type>: <message>
//
// making the error both human- and machine-scannable in logs.
func (e *Throwable) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.typ, e.message)
}

// ThrowableType returns the exception type of e. It implements the
// apis.TypedError contract the resolver keys on.
func (e *Throwable) ThrowableType() *Type {
	if e == nil {
		return nil
	}
	return e.typ
}

// Message returns the human-readable description.
func (e *Throwable) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Details returns the structured payload of the exception. The returned map
// must be treated as read-only; WithDetail always copies.
func (e *Throwable) Details() map[string]any {
	if e == nil {
		return nil
	}
	return e.details
}

// Cause returns the underlying error that triggered this exception, if any.
func (e *Throwable) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Throwable) Unwrap() error { return e.Cause() }

// WithMessage returns a shallow copy of e with a replaced message.
func (e *Throwable) WithMessage(msg string) *Throwable {
	cp := *e
	cp.message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
// The map is always copied to preserve immutability across goroutines.
func (e *Throwable) WithDetail(k string, v any) *Throwable {
	cp := *e
	if len(cp.details) == 0 {
		cp.details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.details)+1)
	for k0, v0 := range cp.details {
		m[k0] = v0
	}
	m[k] = v
	cp.details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original is returned unchanged.
func (e *Throwable) WithCause(err error) *Throwable {
	if err == nil {
		return e
	}
	cp := *e
	cp.cause = err
	return &cp
}

// TypeOf returns the exception type of err, if err carries one.
//
// It recognizes any error implementing the ThrowableType() *Type contract
// (notably *Throwable itself), without unwrapping: the caller decides how to
// walk the chain.
func TypeOf(err error) (*Type, bool) {
	if err == nil {
		return nil, false
	}
	// Direct implementation only: errors.As would unwrap, and chain
	// traversal belongs to the resolver.
	te, ok := err.(interface{ ThrowableType() *Type })
	if !ok {
		return nil, false
	}
	if t := te.ThrowableType(); t != nil {
		return t, true
	}
	return nil, false
}

// CauseOf returns the next link of err's cause chain, or nil when the chain
// is exhausted. It prefers an explicit Cause() contract and falls back to
// errors.Unwrap.
func CauseOf(err error) error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(interface{ Cause() error }); ok {
		if c := ce.Cause(); c != nil {
			return c
		}
	}
	return errors.Unwrap(err)
}
