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
	"strconv"
	"strings"

	"github.com/bufbuild/rustlit/internal/ext/stringsx"
)

// FloatLit is a floating point literal, such as `3.14`, `1e10` or `2.5E-3f32`.
//
// Its text is split into an integer part, an optional fractional part
// introduced by a `.`, an optional exponent, and an optional type suffix.
type FloatLit struct {
	text      string
	endInt    int // End of the integer part.
	endFrac   int // End of the fractional part, including the `.`.
	endNumber int // End of the exponent, which is the end of the number part.
	suffix    FloatType
	hasSuffix bool
}

// ParseFloat parses text as a floating point literal.
//
// Integer-looking input like `42` is also accepted, with an empty fractional
// and exponent part.
func ParseFloat[T Text](text T) (FloatLit, error) {
	s := string(text)
	if err := checkText(s); err != nil {
		return FloatLit{}, err
	}
	if !isDec(s[0]) {
		return FloatLit{}, errorAt(DoesNotStartWithDigit, 0)
	}
	return parseFloat(s)
}

// parseFloat parses a float literal whose first byte is a decimal digit.
func parseFloat(text string) (FloatLit, error) {
	lit := FloatLit{text: text}
	lit.endInt = stringsx.Span(text, isDecOrSep)
	lit.endFrac = lit.endInt

	if lit.endInt < len(text) && text[lit.endInt] == '.' {
		point := lit.endInt
		if point+1 < len(text) && text[point+1] == '_' {
			return FloatLit{}, errorAt(UnexpectedChar, point+1)
		}

		lit.endFrac = point + 1 + stringsx.Span(text[point+1:], isDecOrSep)
		// A `.` with no digits after it must end the literal: anything else
		// would read as a field access or method call.
		if lit.endFrac == point+1 && lit.endFrac < len(text) {
			return FloatLit{}, errorAt(UnexpectedChar, point+1)
		}
	}

	lit.endNumber = lit.endFrac
	if lit.endFrac < len(text) && (text[lit.endFrac] == 'e' || text[lit.endFrac] == 'E') {
		digits := lit.endFrac + 1
		if digits < len(text) && (text[digits] == '+' || text[digits] == '-') {
			digits++
		}
		lit.endNumber = digits + stringsx.Span(text[digits:], isDecOrSep)

		if !stringsx.Any(text[digits:lit.endNumber], isDec) {
			return FloatLit{}, errorSpan(NoExponentDigits, lit.endFrac, lit.endNumber)
		}
	}

	if suffix := text[lit.endNumber:]; suffix != "" {
		ty, ok := floatTypeFromSuffix(suffix)
		if !ok {
			return FloatLit{}, errorSpan(InvalidFloatTypeSuffix, lit.endNumber, len(text))
		}
		lit.suffix, lit.hasSuffix = ty, true
	}

	return lit, nil
}

// NumberPart returns this literal without its type suffix.
func (f FloatLit) NumberPart() string {
	return f.text[:f.endNumber]
}

// IntegerPart returns the digits before the `.` or exponent, including any
// `_` separators.
func (f FloatLit) IntegerPart() string {
	return f.text[:f.endInt]
}

// FractionalPart returns the digits after the `.`, if this literal has one.
//
// The returned string is empty for a literal like `9.`.
func (f FloatLit) FractionalPart() (string, bool) {
	if f.endFrac == f.endInt {
		return "", false
	}
	return f.text[f.endInt+1 : f.endFrac], true
}

// ExponentPart returns the exponent, including its `e` or `E` and sign, or
// the empty string if there is none.
func (f FloatLit) ExponentPart() string {
	return f.text[f.endFrac:f.endNumber]
}

// Suffix returns this literal's type suffix, if it has one.
func (f FloatLit) Suffix() (FloatType, bool) {
	return f.suffix, f.hasSuffix
}

// Float64 returns this literal's value as a float64. Returns false if the
// value is out of range for a float64.
func (f FloatLit) Float64() (float64, bool) {
	v, err := strconv.ParseFloat(f.digits(), 64)
	return v, err == nil
}

// Float32 returns this literal's value as a float32. Returns false if the
// value is out of range for a float32.
func (f FloatLit) Float32() (float32, bool) {
	v, err := strconv.ParseFloat(f.digits(), 32)
	return float32(v), err == nil
}

// digits returns the number part with separators removed, in a form
// [strconv.ParseFloat] accepts.
func (f FloatLit) digits() string {
	return strings.ReplaceAll(f.NumberPart(), "_", "")
}

// String implements [Literal].
func (f FloatLit) String() string {
	return f.text
}

// Kind implements [Literal].
func (FloatLit) Kind() Kind {
	return KindFloat
}

// Clone returns a copy of this literal that does not share memory with the
// text it was parsed from.
func (f FloatLit) Clone() FloatLit {
	f.text = strings.Clone(f.text)
	return f
}

func (FloatLit) isLiteral() {}
