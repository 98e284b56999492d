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

// Package httpx adapts the hfx resolver to HTTP edges: it negotiates the
// requested media type from the Accept header and dispatches a failed
// request's error to the handler function the resolver picks. The handler
// itself is invoked through a caller-supplied InvokeFn — hfx never calls
// handler functions on its own.
package httpx

import (
	"net/http"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/hfx/adapter"
	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
)

// Negotiate derives the requested media type from the request's Accept
// header. The first parseable media range wins; a missing or unparseable
// header yields the wildcard.
//
// This is deliberately not full content negotiation (no q-value ordering):
// the resolver only needs one requested value to match registered media
// types against.
func Negotiate(r *http.Request) mediatype.MediaType {
	if r == nil {
		return mediatype.Wildcard
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return mediatype.Wildcard
	}
	for _, part := range strings.Split(accept, ",") {
		// Strip quality and extension parameters: only the range matters.
		rng, _, _ := strings.Cut(part, ";")
		if m, err := mediatype.Parse(rng); err == nil {
			return m
		}
	}
	return mediatype.Wildcard
}

// InvokeFn dispatches a resolved handler function against the offending
// error. It is supplied by the embedding application, which owns argument
// binding and response writing for its handlers.
type InvokeFn func(rw http.ResponseWriter, req *http.Request, h apis.HandlerDescriptor, err error)

// Writer resolves errors at the HTTP edge and dispatches them.
type Writer struct {
	// Resolver is the engine view used for lookups.
	Resolver apis.Resolver

	// Invoke dispatches the resolved handler. When nil, resolved errors
	// fall through to the fallback body like unresolved ones.
	Invoke InvokeFn
}

// Write resolves err for the request's negotiated media type. On a match
// the caller's InvokeFn takes over; otherwise a minimal JSON fallback body
// with the resolution view is written with status 500.
//
// A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, req *http.Request, err error) {
	if err == nil {
		return
	}

	media := Negotiate(req)
	h, ok := w.Resolver.Resolve(err, media)
	if ok && w.Invoke != nil {
		w.Invoke(rw, req, h, err)
		return
	}

	view := adapter.ToView(err, media, h, ok)
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusInternalServerError)

	// protojson keeps the body shape identical to what the gRPC adapter
	// attaches as status details.
	body, verr := structpb.NewStruct(map[string]any{
		"matched":   view.Matched,
		"handler":   view.Handler,
		"exception": view.Exception,
		"media":     view.Media,
		"message":   view.Message,
	})
	if verr != nil {
		_, _ = rw.Write([]byte(`{"matched":false}`))
		return
	}
	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(body)
	_, _ = rw.Write(b)
}
