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

// Package adapter converts resolution outcomes into the portable view types
// of apis, for structured logging, tracing, or propagation over transports.
package adapter

import (
	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/throwable"
)

// ToView converts a single resolution outcome into a portable
// apis.ResolutionView.
//
// err is the raised error the resolution was performed for (may be nil when
// the lookup was type-only), media the requested media type, h the resolved
// descriptor, and matched whether a handler was found. No redaction is
// performed: the view exposes exactly what it is given.
func ToView(err error, media mediatype.MediaType, h apis.HandlerDescriptor, matched bool) apis.ResolutionView {
	v := apis.ResolutionView{
		Matched: matched,
		Media:   media.String(),
	}
	if matched {
		v.Handler = h.Name
	}
	if err != nil {
		v.Message = err.Error()
		if t, ok := throwable.TypeOf(err); ok {
			v.Exception = t.Name()
		}
	}
	return v
}

// TypeView is like ToView for type-only lookups (apis.Resolver.ResolveType),
// where no live error instance exists.
func TypeView(t *throwable.Type, media mediatype.MediaType, h apis.HandlerDescriptor, matched bool) apis.ResolutionView {
	v := apis.ResolutionView{
		Matched: matched,
		Media:   media.String(),
	}
	if t != nil {
		v.Exception = t.Name()
	}
	if matched {
		v.Handler = h.Name
	}
	return v
}
