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

// Option is a functional option for constructing or transforming a
// Throwable. It always takes a *Throwable and returns a (possibly new)
// *Throwable.
type Option func(*Throwable) *Throwable

// WithCause attaches a cause on construction.
// Intended to be used with Type.New(...).
func WithCause(err error) Option {
	return func(e *Throwable) *Throwable {
		return e.WithCause(err)
	}
}

// WithDetail adds a single detail key/value on construction.
// Intended to be used with Type.New(...).
func WithDetail(k string, v any) Option {
	return func(e *Throwable) *Throwable {
		return e.WithDetail(k, v)
	}
}
