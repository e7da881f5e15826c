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

import "strings"

// CharLit is a character literal, such as `'a'`, `'\n'` or `'\u{1F602}'`.
type CharLit struct {
	text  string
	value rune
}

var charErrors = unitErrors{
	unterminated: UnterminatedCharLiteral,
	empty:        EmptyCharLiteral,
	overlong:     OverlongCharLiteral,
}

// ParseChar parses text as a character literal.
func ParseChar[T Text](text T) (CharLit, error) {
	s := string(text)
	if err := checkText(s); err != nil {
		return CharLit{}, err
	}
	if s[0] != '\'' {
		return CharLit{}, errorAt(DoesNotStartWithQuote, 0)
	}
	return parseChar(s)
}

func parseChar(text string) (CharLit, error) {
	r, err := parseUnit[rune, charUnit](text, 1, charErrors)
	if err != nil {
		return CharLit{}, err
	}
	return CharLit{text: text, value: r}, nil
}

// Value returns the character this literal stands for.
func (c CharLit) Value() rune {
	return c.value
}

// String implements [Literal].
func (c CharLit) String() string {
	return c.text
}

// Kind implements [Literal].
func (CharLit) Kind() Kind {
	return KindChar
}

// Clone returns a copy of this literal that does not share memory with the
// text it was parsed from.
func (c CharLit) Clone() CharLit {
	c.text = strings.Clone(c.text)
	return c
}

func (CharLit) isLiteral() {}
