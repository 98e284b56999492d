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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/registry"
	"dirpx.dev/hfx/resolver"
	"dirpx.dev/hfx/throwable"
)

var typIO = throwable.MustDefine("io")

func newResolver(t *testing.T, ds ...apis.HandlerDescriptor) apis.Resolver {
	t.Helper()
	tbl, err := registry.Build(ds)
	require.NoError(t, err)
	r, err := resolver.New(tbl)
	require.NoError(t, err)
	return r
}

func call(t *testing.T, icept grpc.UnaryServerInterceptor, handlerErr error) (any, error) {
	t.Helper()
	handler := func(ctx context.Context, req any) (any, error) {
		if handlerErr != nil {
			return nil, handlerErr
		}
		return "ok", nil
	}
	return icept(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/svc/Do"}, handler)
}

func TestInterceptor_SuccessPassthrough(t *testing.T) {
	icept := UnaryServerInterceptor(newResolver(t), nil)
	resp, err := call(t, icept, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_UnresolvedErrorPassthrough(t *testing.T) {
	icept := UnaryServerInterceptor(newResolver(t), nil)
	boom := errors.New("plain boom")
	_, err := call(t, icept, boom)
	assert.Same(t, boom, err)
}

func TestInterceptor_InvokeOwnsResolvedErrors(t *testing.T) {
	var invoked *apis.HandlerDescriptor
	icept := UnaryServerInterceptor(
		newResolver(t, apis.HandlerDescriptor{Name: "OnIO", Exceptions: []*throwable.Type{typIO}}),
		func(ctx context.Context, h apis.HandlerDescriptor, err error) error {
			invoked = &h
			return gstatus.Error(gcodes.NotFound, "translated")
		},
	)

	_, err := call(t, icept, typIO.New("disk gone"))
	require.NotNil(t, invoked)
	assert.Equal(t, "OnIO", invoked.Name)
	assert.Equal(t, gcodes.NotFound, gstatus.Code(err))
}

func TestInterceptor_FallbackStatusWithDetail(t *testing.T) {
	icept := UnaryServerInterceptor(
		newResolver(t, apis.HandlerDescriptor{Name: "OnIO", Exceptions: []*throwable.Type{typIO}}),
		nil,
	)

	_, err := call(t, icept, typIO.New("disk gone"))
	require.Error(t, err)
	assert.Equal(t, gcodes.Internal, gstatus.Code(err))

	detail, ok := ExtractResolution(err)
	require.True(t, ok)
	fields := detail.GetFields()
	assert.True(t, fields["matched"].GetBoolValue())
	assert.Equal(t, "OnIO", fields["handler"].GetStringValue())
	assert.Equal(t, "io", fields["exception"].GetStringValue())
}

func TestExtractResolution_Negative(t *testing.T) {
	if _, ok := ExtractResolution(nil); ok {
		t.Fatalf("nil error carries no resolution")
	}
	if _, ok := ExtractResolution(gstatus.Error(gcodes.Internal, "bare")); ok {
		t.Fatalf("status without details carries no resolution")
	}
}
