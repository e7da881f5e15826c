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
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/rustlit/internal/corpora"
	"github.com/bufbuild/rustlit/report"
)

var ansiEscapePat = regexp.MustCompile("\033\\[([\\d;]*)m")

// ansiToMarkup converts ANSI escapes we care about in `text` into markup that is hopefully
// easier for humans to parse.
func ansiToMarkup(text string) string {
	return ansiEscapePat.ReplaceAllStringFunc(text, func(needle string) string {
		// We only handle a small subset of things we know.
		code := ansiEscapePat.FindStringSubmatch(needle)[1]

		colors := []string{"blk", "red", "grn", "ylw", "blu", "mta", "cyn", "wht"}
		place := []string{"", "", "bg", "", "+", "bg.+"}

		if code == "0" {
			code = "reset"
		} else {
			parts := strings.SplitN(code, ";", 2)
			var name strings.Builder
			if parts[0] == "1" {
				name.WriteString("b.")
			}
			name.WriteString(place[(parts[1][0]-'0')/2])
			name.WriteString(colors[parts[1][1]-'0'])
			code = name.String()
		}

		return "⟨" + code + "⟩"
	})
}

// testReport is the YAML form of a [report.Report] used by the test corpus.
type testReport struct {
	Text        string `yaml:"text"`
	Sort        bool   `yaml:"sort"`
	Diagnostics []struct {
		Level    string `yaml:"level"`
		Message  string `yaml:"message"`
		Snippets []struct {
			Start   int    `yaml:"start"`
			End     int    `yaml:"end"`
			Message string `yaml:"message"`
		} `yaml:"snippets"`
		Notes []string `yaml:"notes"`
		Help  []string `yaml:"help"`
	} `yaml:"diagnostics"`
}

func (tr *testReport) build(t *testing.T) *report.Report {
	r := &report.Report{Text: tr.Text}
	for _, td := range tr.Diagnostics {
		var d *report.Diagnostic
		switch td.Level {
		case "error":
			d = r.Errorf("%s", td.Message)
		case "warning":
			d = r.Warnf("%s", td.Message)
		case "remark":
			d = r.Remarkf("%s", td.Message)
		default:
			t.Fatalf("unknown level %q", td.Level)
		}

		for _, s := range td.Snippets {
			d.With(report.Snippetf(report.Span{Start: s.Start, End: s.End}, "%s", s.Message))
		}
		for _, note := range td.Notes {
			d.With(report.Note("%s", note))
		}
		for _, help := range td.Help {
			d.With(report.Help("%s", help))
		}
	}
	if tr.Sort {
		r.Sort()
	}
	return r
}

func TestRender(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:       "testdata",
		Refresh:    "RUSTLIT_REFRESH",
		Extensions: []string{"yaml"},
		Outputs: []corpora.Output{
			{Extension: "simple.txt"},
			{Extension: "fancy.txt"},
			{Extension: "color.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var tr testReport
		if err := yaml.Unmarshal([]byte(text), &tr); err != nil {
			t.Fatalf("failed to parse input %q: %v", path, err)
		}
		r := tr.build(t)

		outputs[0], _, _ = report.Renderer{
			Compact:     true,
			ShowRemarks: true,
		}.RenderString(r)

		outputs[1], _, _ = report.Renderer{
			ShowRemarks: true,
		}.RenderString(r)

		text, _, _ = report.Renderer{
			Colorize:    true,
			ShowRemarks: true,
		}.RenderString(r)
		// This allows colored terminal output to be inspected using -test.v and
		// -test.skip.
		t.Log("\n" + text)
		outputs[2] = ansiToMarkup(text)
	})
}

func TestRenderCounts(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	r := &report.Report{Text: "x"}
	r.Warnf("careful").With(report.Snippet(report.Span{Start: 0, End: 1}))
	r.Remarkf("fyi")

	text, errs, warnings := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal("warning: 1:1: careful\n", text)
	assert.Equal(0, errs)
	assert.Equal(1, warnings)

	text, errs, warnings = report.Renderer{Compact: true, WarningsAreErrors: true, ShowRemarks: true}.RenderString(r)
	assert.Equal("error: 1:1: careful\nremark: fyi\n", text)
	assert.Equal(1, errs)
	assert.Equal(0, warnings)

	text, _, _ = report.Renderer{}.RenderString(&report.Report{})
	assert.Empty(text)
}

func TestRenderClampsSpans(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Out of range and mid-rune spans are clamped rather than causing a panic.
	r := &report.Report{Text: "é"}
	r.Errorf("past the end").With(report.Snippet(report.Span{Start: 5, End: 10}))
	r.Errorf("mid-rune").With(report.Snippet(report.Span{Start: 1, End: 1}))

	text, errs, _ := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal("error: 1:2: past the end\nerror: 1:1: mid-rune\n", text)
	assert.Equal(2, errs)
}
