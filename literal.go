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

	"github.com/bufbuild/rustlit/internal/ext/stringsx"
)

// Text is the input of the parsing functions in this package.
//
// A string argument is borrowed: the returned literal refers to the same
// memory, without copying it. A []byte argument is copied, since the caller
// may overwrite it after parsing.
type Text interface {
	~string | ~[]byte
}

// Literal is a parsed literal of any kind.
//
// Use a type switch to recover the concrete literal type, which is one of
// [BoolLit], [IntegerLit], [FloatLit], [CharLit], [ByteLit], [StringLit] or
// [ByteStringLit].
type Literal interface {
	// Kind returns which literal type this is.
	Kind() Kind

	// String returns the text this literal was parsed from, byte for byte.
	String() string

	isLiteral()
}

var (
	_ Literal = BoolLit(0)
	_ Literal = IntegerLit{}
	_ Literal = FloatLit{}
	_ Literal = CharLit{}
	_ Literal = ByteLit{}
	_ Literal = StringLit{}
	_ Literal = ByteStringLit{}
)

// Parse parses text as a literal of whichever kind its leading bytes select.
//
// text must contain exactly one literal, with no surrounding whitespace.
func Parse[T Text](text T) (Literal, error) {
	return parse(string(text))
}

// Clone returns a copy of lit that does not share memory with the text it
// was parsed from.
func Clone(lit Literal) Literal {
	switch lit := lit.(type) {
	case BoolLit:
		return lit
	case IntegerLit:
		return lit.Clone()
	case FloatLit:
		return lit.Clone()
	case CharLit:
		return lit.Clone()
	case ByteLit:
		return lit.Clone()
	case StringLit:
		return lit.Clone()
	case ByteStringLit:
		return lit.Clone()
	default:
		return lit
	}
}

func parse(text string) (Literal, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}

	switch first := text[0]; {
	case first == 'f' || first == 't':
		return result(parseBool(text))

	case isDec(first):
		// Integers and floats share a leading run of decimal digits, so the
		// byte after that run decides which one this is.
		end := 1 + stringsx.Span(text[1:], isDecOrSep)
		if end == len(text) {
			return result(parseInteger(text))
		}
		switch text[end] {
		case 'b', 'o', 'x', 'u', 'i':
			return result(parseInteger(text))
		case '.', 'e', 'E', 'f':
			return result(parseFloat(text))
		default:
			return nil, errorAt(UnexpectedChar, end)
		}

	case first == '\'':
		return result(parseChar(text))
	case first == '"' || first == 'r':
		return result(parseString(text))

	case first == 'b' && len(text) > 1:
		switch text[1] {
		case '\'':
			return result(parseByte(text))
		case '"', 'r':
			return result(parseByteString(text))
		}
	}

	return nil, errorKind(InvalidLiteral)
}

// result converts the return values of a per-kind parser into those of
// [Parse], making sure a failed parse returns a nil Literal.
func result(lit Literal, err error) (Literal, error) {
	if err != nil {
		return nil, err
	}
	return lit, nil
}

// checkText performs the checks every entry point starts with: the input must
// be non-empty, valid UTF-8.
func checkText(text string) error {
	if text == "" {
		return errorKind(Empty)
	}
	if utf8.ValidString(text) {
		return nil
	}

	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && n == 1 {
			return errorAt(InvalidUTF8, i)
		}
		i += n
	}
	return nil
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isDecOrSep(b byte) bool {
	return isDec(b) || b == '_'
}

func isHexOrSep(b byte) bool {
	return isDecOrSep(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isHash(b byte) bool {
	return b == '#'
}
