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
	"io"
	"strconv"
	"strings"

	"github.com/bufbuild/rustlit/internal/ext/stringsx"
	"github.com/bufbuild/rustlit/internal/ext/unicodex"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of
// errors and warnings rendered. The error return is an error when writing to
// out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	w := &writer{out: out}
	c := newStyleSheet(r)

	for i := range report.Diagnostics {
		d := &report.Diagnostics[i]
		if !r.ShowRemarks && d.Level == Remark {
			continue
		}

		r.diagnostic(w, c, report.Text, d)
		_, _ = w.WriteString("\n")
		if !r.Compact {
			_, _ = w.WriteString("\n")
		}

		switch {
		case d.Level == Error, d.Level == Warning && r.WarningsAreErrors:
			errorCount++
		case d.Level == Warning:
			warningCount++
		}
	}

	if !r.Compact {
		switch {
		case errorCount > 0:
			fmt.Fprintf(w, "%sencountered %d error%v", c.level(Error).bold, errorCount, plural(errorCount))
			if warningCount > 0 {
				fmt.Fprintf(w, " and %d warning%v", warningCount, plural(warningCount))
			}
			fmt.Fprintf(w, "%s\n", c.reset)
		case warningCount > 0:
			fmt.Fprintf(w, "%sencountered %d warning%v%s\n", c.level(Warning).bold, warningCount, plural(warningCount), c.reset)
		}
	}

	return errorCount, warningCount, w.Flush()
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// label returns the word a diagnostic of the given level is introduced with.
func (r Renderer) label(level Level) string {
	if level == Warning && r.WarningsAreErrors {
		return Error.String()
	}
	return level.String()
}

// diagnostic renders a single diagnostic, without a trailing newline.
func (r Renderer) diagnostic(w *writer, c styleSheet, text string, d *Diagnostic) {
	primary, hasPrimary := d.Primary()

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		fmt.Fprintf(w, "%s%s: ", c.level(d.Level).normal, r.label(d.Level))
		if hasPrimary {
			loc := Locate(text, primary.clamp(text).Start)
			fmt.Fprintf(w, "%d:%d: ", loc.Line, loc.Column)
		}
		fmt.Fprintf(w, "%s%s", d.Message(), c.reset)
		return
	}

	// Otherwise, we imitate the Rust compiler.
	fmt.Fprintf(w, "%s%s: %s%s", c.level(d.Level).bold, r.label(d.Level), d.Message(), c.reset)

	lineBarWidth := 2
	if hasPrimary {
		win := newWindow(text, d.Annotations)
		lineBarWidth = max(lineBarWidth, len(strconv.Itoa(win.last+1)))

		loc := Locate(text, primary.clamp(text).Start)
		_, _ = w.WriteString("\n")
		w.WriteSpaces(lineBarWidth)
		fmt.Fprintf(w, "%s--> %d:%d%s", c.accent.normal, loc.Line, loc.Column, c.reset)

		// Add a blank line before the text. This gives the diagnostic window
		// some visual breathing room.
		_, _ = w.WriteString("\n")
		w.WriteSpaces(lineBarWidth)
		fmt.Fprintf(w, "%s |%s", c.accent.normal, c.reset)

		win.render(w, c, d.Level, lineBarWidth)
	}

	// Render the footers. For simplicity we collect them into an array first.
	footers := make([][2]string, 0, len(d.Notes)+len(d.Help))
	for _, note := range d.Notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.Help {
		footers = append(footers, [2]string{"help", help})
	}
	for _, footer := range footers {
		_, _ = w.WriteString("\n")
		w.WriteSpaces(lineBarWidth)
		fmt.Fprintf(w, "%s = %s%s: %s", c.accent.normal, c.level(noteLevel).bold, footer[0], c.reset)
		for i, line := range strings.Split(footer[1], "\n") {
			if i > 0 {
				_, _ = w.WriteString("\n")
				w.WriteSpaces(lineBarWidth + 3 + len(footer[0]) + 2)
			}
			_, _ = w.WriteString(line)
		}
	}
}

// window is the part of a report's text that a diagnostic's annotations
// cover, split into lines.
type window struct {
	lines       []string
	starts      []int // The offset each line starts at.
	first, last int   // The 0-indexed lines the window spans.
	annotations []Annotation
}

func newWindow(text string, annotations []Annotation) *window {
	w := &window{first: -1}

	offset := 0
	for line := range stringsx.Lines(text) {
		w.starts = append(w.starts, offset)
		w.lines = append(w.lines, strings.TrimSuffix(line, "\r"))
		offset += len(line) + 1
	}

	for _, a := range annotations {
		a.Span = a.clamp(text)
		w.annotations = append(w.annotations, a)

		first, last := w.lineRange(a.Span)
		if w.first == -1 || first < w.first {
			w.first = first
		}
		w.last = max(w.last, last)
	}
	return w
}

// lineOf returns the 0-indexed line containing offset.
func (w *window) lineOf(offset int) int {
	line := 0
	for line+1 < len(w.starts) && w.starts[line+1] <= offset {
		line++
	}
	return line
}

// lineRange returns the first and last 0-indexed lines span touches.
func (w *window) lineRange(span Span) (first, last int) {
	first = w.lineOf(span.Start)
	if span.Len() == 0 {
		return first, first
	}
	return first, w.lineOf(span.End - 1)
}

func (w *window) render(out *writer, c styleSheet, level Level, lineBarWidth int) {
	for i := w.first; i <= w.last; i++ {
		line := w.lines[i]

		_, _ = out.WriteString("\n")
		fmt.Fprintf(out, "%s%*d | %s", c.accent.normal, lineBarWidth, i+1, c.reset)
		uw := &unicodex.Width{EscapeNonPrint: true, Out: out}
		_, _ = uw.WriteString(line)

		for _, a := range w.annotations {
			first, last := w.lineRange(a.Span)
			if i < first || i > last {
				continue
			}

			start, end := 0, len(line)
			if i == first {
				start = min(a.Start-w.starts[i], len(line))
			}
			if i == last {
				end = min(a.End-w.starts[i], len(line))
			}
			end = max(start, end)

			col := unicodex.StringWidth(line[:start])
			width := max(unicodex.StringWidth(line[:end])-col, 1)

			mark, color := "-", c.accent.normal
			if a.Primary {
				mark, color = "^", c.level(level).normal
			}

			_, _ = out.WriteString("\n")
			out.WriteSpaces(lineBarWidth)
			fmt.Fprintf(out, "%s | %s", c.accent.normal, c.reset)
			out.WriteSpaces(col)
			fmt.Fprintf(out, "%s%s", color, strings.Repeat(mark, width))
			if i == last && a.Message != "" {
				fmt.Fprintf(out, " %s", a.Message)
			}
			_, _ = out.WriteString(c.reset)
		}
	}
}
