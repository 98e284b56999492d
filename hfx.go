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

package hfx

import (
	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/registry"
	"dirpx.dev/hfx/resolver"
)

// New builds the dispatch table for the given handler descriptors and wraps
// it in a resolver, in one call.
//
// It is the all-or-nothing entry point: any invalid or ambiguous
// declaration fails the whole construction (see the registry package for
// the error conditions), and no resolver is returned. Construction errors
// are defects in the declaring code and must not be retried.
func New(descriptors []apis.HandlerDescriptor, opts ...resolver.Option) (apis.Resolver, error) {
	tbl, err := registry.Build(descriptors)
	if err != nil {
		return nil, err
	}
	return resolver.New(tbl, opts...)
}
