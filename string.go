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

// StringLit is a string literal, such as `"hello\n"` or `r#"raw "text""#`.
type StringLit struct {
	quoted
}

// ParseString parses text as a string literal, raw or not.
func ParseString[T Text](text T) (StringLit, error) {
	s := string(text)
	if err := checkText(s); err != nil {
		return StringLit{}, err
	}
	if s[0] != '"' && s[0] != 'r' {
		return StringLit{}, errorAt(InvalidStringLiteralStart, 0)
	}
	return parseString(s)
}

func parseString(text string) (StringLit, error) {
	q, err := parseQuoted[rune, charUnit](text, 0)
	if err != nil {
		return StringLit{}, err
	}
	return StringLit{q}, nil
}

// Value returns the string this literal stands for, with escapes resolved.
//
// If the literal contains no escapes, this is a substring of the text it was
// parsed from.
func (s StringLit) Value() string {
	return s.decodedBody()
}

// Kind implements [Literal].
func (StringLit) Kind() Kind {
	return KindString
}

// Clone returns a copy of this literal that does not share memory with the
// text it was parsed from.
func (s StringLit) Clone() StringLit {
	return StringLit{s.clone()}
}
