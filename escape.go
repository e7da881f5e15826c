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
	"unicode/utf8"

	"github.com/bufbuild/rustlit/internal/ext/unicodex"
)

// unit is the decoded element of a quoted literal body: a rune for char and
// string literals, a byte for byte and byte string literals.
//
// Implementations are zero-size; the escape decoder and the body scanners
// call methods on a zero value of U rather than taking U as an argument.
type unit[E rune | byte] interface {
	// unicode returns whether \u{...} escapes and unescaped non-ASCII
	// characters are allowed.
	unicode() bool
	// nonASCII returns whether \x escapes may produce values above 0x7f.
	nonASCII() bool

	fromByte(b byte) E
	fromRune(r rune) E
	appendTo(buf []byte, e E) []byte
}

type charUnit struct{}

func (charUnit) unicode() bool                      { return true }
func (charUnit) nonASCII() bool                     { return false }
func (charUnit) fromByte(b byte) rune               { return rune(b) }
func (charUnit) fromRune(r rune) rune               { return r }
func (charUnit) appendTo(buf []byte, r rune) []byte { return utf8.AppendRune(buf, r) }

type byteUnit struct{}

func (byteUnit) unicode() bool                      { return false }
func (byteUnit) nonASCII() bool                     { return true }
func (byteUnit) fromByte(b byte) byte               { return b }
func (byteUnit) fromRune(r rune) byte               { return byte(r) }
func (byteUnit) appendTo(buf []byte, b byte) []byte { return append(buf, b) }

// maxUnicodeEscapeDigits is the largest number of hex digits a \u{...} escape
// may contain, not counting underscores.
const maxUnicodeEscapeDigits = 6

// unescape decodes the escape sequence at the start of input, which must begin
// with a backslash. offset is the position of that backslash in the literal's
// text, and is used to build error spans.
//
// Returns the decoded unit and the number of bytes of input it occupies.
func unescape[E rune | byte, U unit[E]](input string, offset int) (E, int, error) {
	var (
		u    U
		zero E
	)

	if len(input) < 2 {
		return zero, 0, errorAt(UnterminatedEscape, offset)
	}

	switch input[1] {
	case '\'', '"', '\\':
		return u.fromByte(input[1]), 2, nil
	case 'n':
		return u.fromByte('\n'), 2, nil
	case 'r':
		return u.fromByte('\r'), 2, nil
	case 't':
		return u.fromByte('\t'), 2, nil
	case '0':
		return u.fromByte(0), 2, nil

	case 'x':
		if len(input) < 4 {
			return zero, 0, errorSpan(UnterminatedEscape, offset, offset+len(input))
		}
		hi, ok1 := unicodex.Digit(input[2], 16)
		lo, ok2 := unicodex.Digit(input[3], 16)
		if !ok1 || !ok2 {
			end := 4
			for end < len(input) && !utf8.RuneStart(input[end]) {
				end++
			}
			return zero, 0, errorSpan(InvalidXEscape, offset, offset+end)
		}

		value := hi<<4 | lo
		if !u.nonASCII() && !unicodex.IsASCII(value) {
			return zero, 0, errorSpan(NonAsciiXEscape, offset, offset+4)
		}
		return u.fromByte(value), 4, nil

	case 'u':
		r, n, err := unescapeUnicode(input, offset, u.unicode())
		if err != nil {
			return zero, 0, err
		}
		return u.fromRune(r), n, nil

	default:
		// Cover the whole character after the backslash, not just its first
		// byte, so that the span never splits a rune.
		_, n := utf8.DecodeRuneInString(input[1:])
		return zero, 0, errorSpan(UnknownEscape, offset, offset+1+n)
	}
}

// unescapeUnicode decodes a \u{...} escape at the start of input.
func unescapeUnicode(input string, offset int, allowed bool) (rune, int, error) {
	if !allowed {
		return 0, 0, errorSpan(UnicodeEscapeInByteLiteral, offset, offset+2)
	}
	if len(input) < 3 || input[2] != '{' {
		return 0, 0, errorSpan(UnicodeEscapeWithoutBrace, offset, offset+2)
	}

	closing := 3
	for closing < len(input) && input[closing] != '}' {
		closing++
	}
	if closing == len(input) {
		return 0, 0, errorSpan(UnterminatedUnicodeEscape, offset, offset+len(input))
	}

	inner := input[3:closing]
	if inner == "" || inner[0] == '_' {
		return 0, 0, errorAt(InvalidStartOfUnicodeEscape, offset+3)
	}

	var value rune
	var digits int
	for i := range len(inner) {
		if inner[i] == '_' {
			continue
		}

		digit, ok := unicodex.Digit(inner[i], 16)
		if !ok {
			return 0, 0, errorAt(NonHexDigitInUnicodeEscape, offset+3+i)
		}
		if digits == maxUnicodeEscapeDigits {
			return 0, 0, errorAt(TooManyDigitInUnicodeEscape, offset+3+i)
		}
		digits++
		value = value<<4 | rune(digit)
	}

	if !utf8.ValidRune(value) {
		return 0, 0, errorSpan(InvalidUnicodeEscapeChar, offset, offset+closing+1)
	}
	return value, closing + 1, nil
}
