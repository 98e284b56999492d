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

package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/mediatype"
	"dirpx.dev/hfx/throwable"
)

var typIO = throwable.MustDefine("io")

func TestToView_Matched(t *testing.T) {
	err := typIO.New("disk gone")
	h := apis.HandlerDescriptor{Name: "OnIO"}

	v := ToView(err, mediatype.MustParse("application/json"), h, true)
	assert.True(t, v.Matched)
	assert.Equal(t, "OnIO", v.Handler)
	assert.Equal(t, "io", v.Exception)
	assert.Equal(t, "application/json", v.Media)
	assert.Equal(t, "io: disk gone", v.Message)
}

func TestToView_Miss(t *testing.T) {
	v := ToView(errors.New("plain"), mediatype.Wildcard, apis.HandlerDescriptor{}, false)
	assert.False(t, v.Matched)
	assert.Empty(t, v.Handler)
	assert.Empty(t, v.Exception) // plain errors carry no type
	assert.Equal(t, "plain", v.Message)
}

func TestToView_NilError(t *testing.T) {
	v := ToView(nil, mediatype.Wildcard, apis.HandlerDescriptor{Name: "OnIO"}, true)
	assert.True(t, v.Matched)
	assert.Empty(t, v.Message)
	assert.Empty(t, v.Exception)
}

func TestTypeView(t *testing.T) {
	v := TypeView(typIO, mediatype.Wildcard, apis.HandlerDescriptor{Name: "OnIO"}, true)
	assert.True(t, v.Matched)
	assert.Equal(t, "io", v.Exception)
	assert.Equal(t, "OnIO", v.Handler)

	miss := TypeView(nil, mediatype.Wildcard, apis.HandlerDescriptor{}, false)
	assert.False(t, miss.Matched)
	assert.Empty(t, miss.Exception)
}
