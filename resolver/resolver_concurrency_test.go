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

package resolver

import (
	"sync"
	"testing"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/throwable"
)

// TestResolver_ConcurrentLookups hammers one resolver from many goroutines.
// A tiny cache keeps eviction constant, so the test exercises the full
// miss -> scan -> cache -> evict cycle under the race detector.
func TestResolver_ConcurrentLookups(t *testing.T) {
	r := mustResolver(t, mustBuild(t,
		apis.HandlerDescriptor{Name: "OnIO", Exceptions: []*throwable.Type{typIO}},
		apis.HandlerDescriptor{Name: "OnFile", Exceptions: []*throwable.Type{typFile}, MediaTypes: []string{"application/json"}},
		apis.HandlerDescriptor{Name: "OnNet", Exceptions: []*throwable.Type{typNet}},
	), WithCacheCapacity(2))

	lookups := []struct {
		typ   *throwable.Type
		media mediatype.MediaType
		want  string
		ok    bool
	}{
		{typFile, jsonMT, "OnFile", true},
		{typFile, plainMT, "OnIO", true},
		{typIO, mediatype.Wildcard, "OnIO", true},
		{typNet, jsonMT, "OnNet", true},
		{typNet, plainMT, "OnNet", true},
	}

	const (
		goroutines = 16
		iterations = 500
	)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				l := lookups[(g+i)%len(lookups)]
				h, ok := r.ResolveType(l.typ, l.media)
				if ok != l.ok || (ok && h.Name != l.want) {
					t.Errorf("ResolveType(%v, %v) = (%q, %v), want (%q, %v)", l.typ, l.media, h.Name, ok, l.want, l.ok)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

// TestResolver_ConcurrentResolveWithChains mixes cause-chain resolution and
// misses from many goroutines.
func TestResolver_ConcurrentResolveWithChains(t *testing.T) {
	r := mustResolver(t, mustBuild(t,
		apis.HandlerDescriptor{Name: "OnIO", Exceptions: []*throwable.Type{typIO}},
	), WithCacheCapacity(1))

	chained := typNet.Wrap(typIO.New("disk gone"), "request failed")
	miss := typNet.New("unreachable")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 300; i++ {
				if h, ok := r.Resolve(chained, mediatype.Wildcard); !ok || h.Name != "OnIO" {
					t.Errorf("chained Resolve = (%q, %v), want (\"OnIO\", true)", h.Name, ok)
					return
				}
				if _, ok := r.Resolve(miss, mediatype.Wildcard); ok {
					t.Errorf("miss Resolve must stay a miss")
					return
				}
			}
		}()
	}
	wg.Wait()
}
