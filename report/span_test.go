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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/rustlit/report"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	text := "foo\nbar\ncat: 🐈\n\tx"

	tests := []struct {
		offset int
		loc    report.Location
	}{
		{offset: 0, loc: report.Location{Offset: 0, Line: 1, Column: 1}},
		{offset: 2, loc: report.Location{Offset: 2, Line: 1, Column: 3}},
		{offset: 4, loc: report.Location{Offset: 4, Line: 2, Column: 1}},
		{offset: 13, loc: report.Location{Offset: 13, Line: 3, Column: 6}},
		// Past the wide cat.
		{offset: 17, loc: report.Location{Offset: 17, Line: 3, Column: 8}},
		// Past a tab.
		{offset: 19, loc: report.Location{Offset: 19, Line: 4, Column: 5}},
		{offset: 100, loc: report.Location{Offset: 20, Line: 4, Column: 6}},
		{offset: -1, loc: report.Location{Offset: 0, Line: 1, Column: 1}},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			t.Parallel()
			t.Logf("%q | %q", text[:tt.loc.Offset], text[tt.loc.Offset:])
			assert.Equal(t, tt.loc, report.Locate(text, tt.offset))
		})
	}
}

func TestSpan(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	text := "a日b"
	assert.Equal("日", report.Span{Start: 1, End: 4}.Text(text))
	// Spans are widened to whole runes.
	assert.Equal("日", report.Span{Start: 2, End: 3}.Text(text))
	assert.Equal("a日b", report.Span{Start: -3, End: 30}.Text(text))
	assert.Empty(report.Span{Start: 5, End: 5}.Text(text))

	assert.Equal("1..4", report.Span{Start: 1, End: 4}.String())
	assert.Equal(3, report.Span{Start: 1, End: 4}.Len())
}

func TestSort(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	r := &report.Report{Text: "0123456789"}
	r.Errorf("none")
	r.Errorf("late").With(report.Snippet(report.Span{Start: 7, End: 8}))
	r.Warnf("early").With(report.Snippet(report.Span{Start: 1, End: 2}))
	r.Errorf("also late").With(report.Snippet(report.Span{Start: 7, End: 9}))
	r.Sort()

	var got []string
	for _, d := range r.Diagnostics {
		got = append(got, d.Message())
	}
	assert.Equal([]string{"early", "late", "also late", "none"}, got)
}
