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

package rustlit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/rustlit/report"
)

// Span is a half-open range of byte offsets into the text of a literal.
type Span = report.Span

// ParseError is returned by every parsing function in this package when its
// input is not a valid literal.
//
// The kind and span an invalid input is reported with are best-effort
// diagnostics: inputs such as three single quotes can be read as more than
// one mistake.
// They should not be matched on as a stable protocol.
type ParseError struct {
	kind    ErrorKind
	span    Span
	hasSpan bool
}

var _ report.Diagnose = (*ParseError)(nil)

func errorSpan(kind ErrorKind, start, end int) *ParseError {
	return &ParseError{kind: kind, span: Span{Start: start, End: end}, hasSpan: true}
}

func errorAt(kind ErrorKind, at int) *ParseError {
	return errorSpan(kind, at, at+1)
}

func errorKind(kind ErrorKind) *ParseError {
	return &ParseError{kind: kind}
}

// Kind returns what went wrong.
func (e *ParseError) Kind() ErrorKind {
	return e.kind
}

// Span returns the bytes of the input this error refers to, if it refers to
// any in particular.
func (e *ParseError) Span() (Span, bool) {
	return e.span, e.hasSpan
}

// Error implements [error].
func (e *ParseError) Error() string {
	if !e.hasSpan {
		return e.kind.Message()
	}
	return fmt.Sprintf("%s (at %d..%d)", e.kind.Message(), e.span.Start, e.span.End)
}

// Diagnose implements [report.Diagnose].
func (e *ParseError) Diagnose(d *report.Diagnostic) {
	d.With(report.Message("%s", e.kind.Message()))
	if e.hasSpan {
		d.With(report.Snippet(e.span))
	}

	switch e.kind {
	case InvalidIntegerTypeSuffix:
		d.With(report.Help("valid suffixes are %s", suffixList(_table_IntegerType_String[:])))
	case InvalidFloatTypeSuffix:
		d.With(report.Help("valid suffixes are %s", suffixList(_table_FloatType_String[:])))
	case UnknownEscape:
		d.With(report.Help("valid escapes are %s", suffixList([]string{
			`\n`, `\r`, `\t`, `\\`, `\0`, `\'`, `\"`, `\x7f`, `\u{7fff}`,
		})))
	case NonAsciiXEscape:
		d.With(report.Help("use a `\\u{...}` escape to write a non-ASCII character"))
	case NonAsciiInByteLiteral:
		d.With(report.Help("use a `\\xNN` escape to write a byte above 0x7f"))
	case UnescapedSingleQuote:
		d.With(report.Help("escape it as `\\'`"))
	case IsolatedCr:
		d.With(report.Help("write a lone carriage return as `\\r`"))
	case TooManyHashes:
		d.With(report.Note("raw string delimiters may use at most %d `#` characters", maxRawHashes))
	case OverlongCharLiteral:
		d.With(report.Help("use a string literal if more than one character is intended"))
	}
}

// Diagnose turns the error returned by a failed parse of text into a report
// that can be rendered with a [report.Renderer].
//
// If err is not a [*ParseError], the report contains a single spanless
// diagnostic with err's message.
func Diagnose(text string, err error) *report.Report {
	r := &report.Report{Text: text}

	var perr *ParseError
	if !errors.As(err, &perr) {
		r.Errorf("%v", err)
		return r
	}

	d := r.Error(perr)
	if !perr.hasSpan {
		d.With(report.Snippet(Span{Start: 0, End: len(text)}))
	}
	return r
}

// suffixList formats a list of spellings as a human-readable list of code
// spans.
func suffixList(spellings []string) string {
	var out strings.Builder
	for i, s := range spellings {
		switch {
		case i == 0:
		case i == len(spellings)-1:
			out.WriteString(" and ")
		default:
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "`%s`", s)
	}
	return out.String()
}
