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

// Package throwable models an explicit exception-type hierarchy and the
// exception instances raised against it.
//
// Go has no class hierarchy, so the hierarchy the resolution engine needs
// (supertype steps, assignability, hierarchy distance) is declared rather
// than introspected. A Type is defined once, usually at package scope, and
// optionally extends another Type:
//
//	var (
//		ErrIO   = throwable.MustDefine("io")
//		ErrFile = throwable.MustDefine("io.file_not_found", throwable.Extends(ErrIO))
//	)
//
// Every Type without an explicit parent extends Base, the root of the
// hierarchy. Types are compared by identity: two Define calls always produce
// two distinct types, even with equal names.
//
// Exception instances are created from their Type:
//
//	return ErrFile.New("config not found",
//		throwable.WithCause(err),
//		throwable.WithDetail("path", p),
//	)
//
// A Throwable is an error; its cause is reachable through errors.Unwrap and
// through the apis.CausedError contract. The resolver package walks exactly
// that chain.
package throwable
