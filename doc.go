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

// Package rustlit parses the text of a single Rust literal token into a
// structured value.
//
// The input to every function in this package is the exact text of one
// literal, such as `0x1F_u8`, `3.14f32`, `'\u{1F602}'`, `"a\nb"`,
// `br#"raw"#` or `true`, as isolated by some tokenizer. [Parse] figures out
// what kind of literal it is; ParseInteger, ParseString and friends parse one
// kind only.
//
// Parsing never panics. Invalid input is reported as a [*ParseError], which
// carries an [ErrorKind] and, usually, the [Span] of the offending bytes.
// [Diagnose] turns one into a report that can be rendered for a human.
//
// A successfully parsed literal formats back to exactly the text it was
// parsed from. Values are decoded without copying where possible: when
// parsing a string, the literal refers to the caller's memory until it is
// passed to [Clone].
//
// Whether an integer literal's value fits in its suffix type is a separate
// question from whether the literal is well-formed; see [IntegerValue] and
// [CheckOverflow].
package rustlit

//go:generate go run github.com/bufbuild/rustlit/internal/enum kind.yaml number.yaml error_kind.yaml
