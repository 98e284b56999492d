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

// Package apis defines the public Go-level contracts of the hfx resolution
// engine.
//
// The goal of this package is to provide *small, composable* types that
// other packages can depend on without importing the concrete registry and
// resolver implementations. It is the surface that transport adapters
// (httpx, grpcx), discovery collaborators, and business code target.
//
// This package must remain lightweight: it contains interfaces and small
// view types only, plus the descriptor shape that the Registry Builder
// consumes.
package apis
