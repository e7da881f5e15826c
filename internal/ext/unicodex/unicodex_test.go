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

package unicodex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/rustlit/internal/ext/unicodex"
)

func TestDigit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tests := []struct {
		digit byte
		base  byte
		value byte
		ok    bool
	}{
		{'0', 2, 0, true},
		{'1', 2, 1, true},
		{'2', 2, 0, false},
		{'7', 8, 7, true},
		{'8', 8, 0, false},
		{'9', 10, 9, true},
		{'a', 10, 0, false},
		{'a', 16, 10, true},
		{'F', 16, 15, true},
		{'g', 16, 0, false},
		{'_', 16, 0, false},
	}
	for _, tt := range tests {
		value, ok := unicodex.Digit(tt.digit, tt.base)
		assert.Equal(tt.ok, ok, "%q in base %d", tt.digit, tt.base)
		assert.Equal(tt.value, value, "%q in base %d", tt.digit, tt.base)
	}

	_, ok := unicodex.Digit('٣', 10)
	assert.False(ok)
}

func TestWidth(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(0, unicodex.StringWidth(""))
	assert.Equal(3, unicodex.StringWidth("abc"))
	assert.Equal(4, unicodex.StringWidth("日本"))
	assert.Equal(4, unicodex.StringWidth("\t"))
	assert.Equal(4, unicodex.StringWidth("ab\t"))
	assert.Equal(8, unicodex.StringWidth("abcd\t"))
	assert.Equal(len("<U+0001>"), unicodex.StringWidth("\x01"))
	assert.Equal(len("<FF>"), unicodex.StringWidth("\xff"))

	var out strings.Builder
	w := &unicodex.Width{EscapeNonPrint: true, Out: &out}
	_, _ = w.WriteString("a\tb\r\x00")
	assert.Equal("a   b<U+000D><U+0000>", out.String())
	assert.Equal(len("a   b<U+000D><U+0000>"), w.Column)
}
