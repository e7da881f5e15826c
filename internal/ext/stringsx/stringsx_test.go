// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stringsx_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/rustlit/internal/ext/stringsx"
)

func TestSpan(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	assert.Equal(0, stringsx.Span("", isDigit))
	assert.Equal(3, stringsx.Span("123abc", isDigit))
	assert.Equal(3, stringsx.Span("123", isDigit))
	assert.Equal(0, stringsx.Span("a123", isDigit))

	assert.True(stringsx.Any("ab1", isDigit))
	assert.False(stringsx.Any("abc", isDigit))
	assert.False(stringsx.Any("", isDigit))
}

func TestLines(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal([]string{""}, slices.Collect(stringsx.Lines("")))
	assert.Equal([]string{"a", "b", ""}, slices.Collect(stringsx.Lines("a\nb\n")))
	assert.Equal([]string{"a", "bc"}, slices.Collect(stringsx.Split("a::bc", "::")))
}
