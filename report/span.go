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

package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/rustlit/internal/ext/unicodex"
)

// Span is a half-open range of byte offsets into the text of a [Report].
type Span struct {
	Start, End int
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the text corresponding to this span. The span is clamped to
// the bounds of text.
func (s Span) Text(text string) string {
	s = s.clamp(text)
	return text[s.Start:s.End]
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// clamp clamps s to the bounds of text, and snaps it outwards to the nearest
// rune boundaries.
func (s Span) clamp(text string) Span {
	s.Start = min(max(s.Start, 0), len(text))
	s.End = min(max(s.End, s.Start), len(text))

	for s.Start > 0 && s.Start < len(text) && !utf8.RuneStart(text[s.Start]) {
		s.Start--
	}
	for s.End < len(text) && !utf8.RuneStart(text[s.End]) {
		s.End++
	}
	return s
}

// Location is a user-displayable location within some text.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// The column is measured in terminal columns, taking tabstops and wide
	// characters into account.
	Line, Column int
}

// Locate converts a byte offset into text into a [Location].
func Locate(text string, offset int) Location {
	offset = min(max(offset, 0), len(text))
	before := text[:offset]

	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Location{
		Offset: offset,
		Line:   strings.Count(before, "\n") + 1,
		Column: unicodex.StringWidth(before[lineStart:]) + 1,
	}
}
