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

// Package registry builds the immutable dispatch table of the hfx engine.
//
// Build consumes the handler-function descriptors of a container type and
// expands every declaration into (exception type × media type) keys:
//
//  1. Exception coverage: the explicitly declared types, or — as fallback —
//     every throwable-typed parameter of the function. Empty coverage fails
//     the build.
//  2. Media-type coverage: every declared string parsed through mediatype;
//     an unparseable string fails the build. No declaration defaults to the
//     wildcard.
//  3. Key expansion: the cross product of both sets, each key mapping to
//     exactly one handler function.
//  4. Ambiguity: a key claimed by two *different* functions fails the
//     build. Re-inserting the same function under the same key is a no-op.
//
// Build failures are configuration defects in the declaring code: they are
// surfaced immediately as wrapped sentinel errors (ErrNoExceptionTypes,
// ErrInvalidMediaType, ErrAmbiguousMapping) and must not be retried.
//
// The resulting Table is an immutable snapshot, safe for unsynchronized
// concurrent reads, and remembers first-insertion order so that downstream
// tie-breaking stays deterministic.
package registry
