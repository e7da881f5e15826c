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

// ByteLit is a byte literal, such as `b'a'` or `b'\xff'`.
type ByteLit struct {
	text  string
	value byte
}

var byteErrors = unitErrors{
	unterminated: UnterminatedByteLiteral,
	empty:        EmptyByteLiteral,
	overlong:     OverlongByteLiteral,
}

// ParseByte parses text as a byte literal.
func ParseByte[T Text](text T) (ByteLit, error) {
	s := string(text)
	if err := checkText(s); err != nil {
		return ByteLit{}, err
	}
	if !strings.HasPrefix(s, "b'") {
		return ByteLit{}, errorKind(InvalidByteLiteralStart)
	}
	return parseByte(s)
}

func parseByte(text string) (ByteLit, error) {
	b, err := parseUnit[byte, byteUnit](text, 2, byteErrors)
	if err != nil {
		return ByteLit{}, err
	}
	return ByteLit{text: text, value: b}, nil
}

// Value returns the byte this literal stands for.
func (b ByteLit) Value() byte {
	return b.value
}

// String implements [Literal].
func (b ByteLit) String() string {
	return b.text
}

// Kind implements [Literal].
func (ByteLit) Kind() Kind {
	return KindByte
}

// Clone returns a copy of this literal that does not share memory with the
// text it was parsed from.
func (b ByteLit) Clone() ByteLit {
	b.text = strings.Clone(b.text)
	return b
}

func (ByteLit) isLiteral() {}
