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

/*
Package report provides a small diagnostics framework: diagnostic
construction and ASCII art rendering of the text a diagnostic points into.

Diagnostics are collected into a [Report], which pairs the text being
diagnosed with a slice of [Diagnostic]s. Each [Diagnostic] consists of a Go
error plus metadata for rendering, such as spans of that text, notes and
help. Reports are rendered with a [Renderer], either one line per diagnostic
or in the style of the Rust compiler, with carets under the offending bytes.

# Defining Diagnostics

Generally, to define a diagnostic, define a new Go error type and make it
implement [Diagnose]. Someone using it as a library can then type assert
Diagnostic.Err to programmatically determine the nature of a diagnostic, and
every place that reports it renders it the same way.

# Diagnostics Style Guide

Diagnostic messages do not begin with a capital letter and do not end in
punctuation. The words "error", "warning", "remark", "help" and "note" are
never capitalized. Code is set off in `backticks`.

Notes are for factual information that adds context to why the diagnostic
was shown. Help is for prose suggestions to the user.
*/
package report

//go:generate go run github.com/bufbuild/rustlit/internal/enum level.yaml
