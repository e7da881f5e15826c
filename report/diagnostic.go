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

import "fmt"

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic does embed error;
// some represent warnings, or perhaps debugging remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	// A list of annotated spans in the diagnostic.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic, after
	// the Annotations.
	Notes, Help []string

	message string
}

// Annotation is an annotated span within a [Diagnostic].
type Annotation struct {
	Span

	// A message to show under this snippet. May be empty.
	Message string

	// Whether this is the "primary" snippet, which is rendered in the color of
	// the overall diagnostic.
	Primary bool
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// Message returns the headline of this diagnostic. This is the message set
// with the [Message] option, or the message of Err otherwise.
func (d *Diagnostic) Message() string {
	if d.message != "" || d.Err == nil {
		return d.message
	}
	return d.Err.Error()
}

// Primary returns this diagnostic's primary annotation, if it has one.
func (d *Diagnostic) Primary() (Annotation, bool) {
	for _, annotation := range d.Annotations {
		if annotation.Primary {
			return annotation, true
		}
	}
	return Annotation{}, false
}

// With applies the given options to this diagnostic.
//
// Nil options are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// Message returns a DiagnosticOption that sets the headline of a diagnostic,
// in place of the message of its Err.
func Message(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.message = fmt.Sprintf(format, args...)
	}
}

// Snippet returns a DiagnosticOption that adds a new snippet to a diagnostic.
//
// The first annotation added is the "primary" annotation, and will be rendered
// differently from the others.
func Snippet(span Span) DiagnosticOption {
	return Snippetf(span, "")
}

// Snippetf is like [Snippet], but attaches a message to the snippet.
func Snippetf(span Span, format string, args ...any) DiagnosticOption {
	annotation := Annotation{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
	return func(d *Diagnostic) {
		annotation.Primary = len(d.Annotations) == 0
		d.Annotations = append(d.Annotations, annotation)
	}
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Help = append(d.Help, fmt.Sprintf(format, args...))
	}
}
