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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/registry"
	"dirpx.dev/hfx/resolver"
	"dirpx.dev/hfx/throwable"
)

var (
	typIO   = throwable.MustDefine("io")
	typFile = throwable.MustDefine("io.file_not_found", throwable.Extends(typIO))
)

func newResolver(t *testing.T, ds ...apis.HandlerDescriptor) apis.Resolver {
	t.Helper()
	tbl, err := registry.Build(ds)
	require.NoError(t, err)
	r, err := resolver.New(tbl)
	require.NoError(t, err)
	return r
}

func TestNegotiate(t *testing.T) {
	cases := []struct {
		accept string
		want   mediatype.MediaType
	}{
		{"", mediatype.Wildcard},
		{"application/json", mediatype.MustParse("application/json")},
		{"application/json; q=0.9", mediatype.MustParse("application/json")},
		{"text/html, application/json", mediatype.MustParse("text/html")},
		{"garbage, application/json", mediatype.MustParse("application/json")},
		{"garbage", mediatype.Wildcard},
		{"*/*", mediatype.Wildcard},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if c.accept != "" {
			req.Header.Set("Accept", c.accept)
		}
		assert.Equal(t, c.want, Negotiate(req), "Accept: %q", c.accept)
	}

	assert.Equal(t, mediatype.Wildcard, Negotiate(nil))
}

func TestWrite_NilErrorWritesNothing(t *testing.T) {
	w := Writer{Resolver: newResolver(t)}
	rec := httptest.NewRecorder()
	w.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, http.StatusOK, rec.Code) // untouched recorder default
}

func TestWrite_DispatchesToInvoke(t *testing.T) {
	var invoked *apis.HandlerDescriptor
	w := Writer{
		Resolver: newResolver(t, apis.HandlerDescriptor{Name: "OnIO", Exceptions: []*throwable.Type{typIO}}),
		Invoke: func(rw http.ResponseWriter, req *http.Request, h apis.HandlerDescriptor, err error) {
			invoked = &h
			rw.WriteHeader(http.StatusConflict)
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	w.Write(rec, req, typFile.New("missing"))

	require.NotNil(t, invoked)
	assert.Equal(t, "OnIO", invoked.Name)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWrite_FallbackBodyOnMiss(t *testing.T) {
	w := Writer{Resolver: newResolver(t, apis.HandlerDescriptor{Name: "OnIO", Exceptions: []*throwable.Type{typIO}})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w.Write(rec, req, throwable.MustDefine("net").New("unreachable"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["matched"])
	assert.Equal(t, "net", body["exception"])
	assert.Equal(t, "net: unreachable", body["message"])
}

func TestWrite_FallbackWhenInvokeNil(t *testing.T) {
	// A resolved error with no InvokeFn still gets the fallback body, with
	// the matched handler reported.
	w := Writer{Resolver: newResolver(t, apis.HandlerDescriptor{Name: "OnIO", Exceptions: []*throwable.Type{typIO}})}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	w.Write(rec, req, typIO.New("disk gone"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["matched"])
	assert.Equal(t, "OnIO", body["handler"])
}
