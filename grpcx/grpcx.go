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

// Package grpcx adapts the hfx resolver to gRPC servers: an interceptor
// resolves a handler function for errors returned by RPC handlers and
// dispatches through a caller-supplied invoker. gRPC carries no media-type
// negotiation, so lookups use the wildcard.
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/hfx/adapter"
	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
)

// InvokeFn dispatches a resolved handler function against the offending
// error and returns the error the RPC should surface (commonly a
// gstatus.Status error built by the handler). Returning nil swallows the
// error.
type InvokeFn func(ctx context.Context, h apis.HandlerDescriptor, err error) error

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that routes
// handler-returned errors through the resolver.
//
// Errors the resolver cannot place (no exception type anywhere in the cause
// chain, or no registered mapping) are returned as-is — the caller decides
// the fallback, exactly as with a direct resolver miss.
//
// When invoke is nil, a resolved error is converted to an Internal status
// carrying the resolution view as a structpb detail, so clients and logs
// can still see which handler was selected.
func UnaryServerInterceptor(res apis.Resolver, invoke InvokeFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		h, ok := res.Resolve(err, mediatype.Wildcard)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		if invoke != nil {
			return nil, invoke(ctx, h, err)
		}

		view := adapter.ToView(err, mediatype.Wildcard, h, true)
		base := gstatus.New(gcodes.Internal, err.Error())

		// Attach the resolution view as details. If that fails, the base
		// status still carries the message.
		detail, derr := structpb.NewStruct(map[string]any{
			"matched":   view.Matched,
			"handler":   view.Handler,
			"exception": view.Exception,
			"media":     view.Media,
		})
		if derr == nil {
			if with, werr := base.WithDetails(detail); werr == nil {
				return nil, with.Err()
			}
		}
		return nil, base.Err()
	}
}

// ExtractResolution pulls the resolution detail out of a gRPC error
// produced by the interceptor's fallback path, if present. Useful in tests
// and client code.
func ExtractResolution(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
