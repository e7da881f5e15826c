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
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/rustlit/internal/ext/stringsx"
	"github.com/bufbuild/rustlit/internal/ext/unicodex"
	"github.com/bufbuild/rustlit/report"
)

// IntegerLit is an integer literal, such as `42`, `0x1F_u8` or `0b1010i32`.
//
// An IntegerLit only records what the literal says, not whether its value fits
// in its suffix type; see [IntegerValue] and [CheckOverflow].
type IntegerLit struct {
	text      string
	base      IntegerBase
	end       int // End of the main part. It starts right after the prefix.
	suffix    IntegerType
	hasSuffix bool
}

// ParseInteger parses text as an integer literal.
func ParseInteger[T Text](text T) (IntegerLit, error) {
	s := string(text)
	if err := checkText(s); err != nil {
		return IntegerLit{}, err
	}
	if !isDec(s[0]) {
		return IntegerLit{}, errorAt(DoesNotStartWithDigit, 0)
	}
	return parseInteger(s)
}

// parseInteger parses an integer literal whose first byte is a decimal digit.
func parseInteger(text string) (IntegerLit, error) {
	lit := IntegerLit{text: text, base: Decimal}
	if len(text) >= 2 && text[0] == '0' {
		switch text[1] {
		case 'b':
			lit.base = Binary
		case 'o':
			lit.base = Octal
		case 'x':
			lit.base = Hexadecimal
		}
	}

	start := len(lit.base.Prefix())
	// The main part is scanned with the widest digit set regardless of base,
	// so that a digit that is too large is reported as such rather than as
	// the start of a suffix.
	lit.end = start + stringsx.Span(text[start:], isHexOrSep)

	digits := lit.Digits()
	var sawDigit bool
	for i := range len(digits) {
		if digits[i] == '_' {
			continue
		}
		if _, ok := unicodex.Digit(digits[i], lit.base.Radix()); !ok {
			return IntegerLit{}, errorAt(InvalidDigit, start+i)
		}
		sawDigit = true
	}
	if !sawDigit {
		return IntegerLit{}, errorSpan(NoDigits, start, lit.end)
	}

	if suffix := text[lit.end:]; suffix != "" {
		ty, ok := integerTypeFromSuffix(suffix)
		if !ok {
			return IntegerLit{}, errorSpan(InvalidIntegerTypeSuffix, lit.end, len(text))
		}
		lit.suffix, lit.hasSuffix = ty, true
	}

	return lit, nil
}

// Base returns the base this literal is written in.
func (i IntegerLit) Base() IntegerBase {
	return i.base
}

// Digits returns the main part of this literal: its digits, including any
// `_` separators, without the base prefix or the type suffix.
func (i IntegerLit) Digits() string {
	return i.text[len(i.base.Prefix()):i.end]
}

// Suffix returns this literal's type suffix, if it has one.
func (i IntegerLit) Suffix() (IntegerType, bool) {
	return i.suffix, i.hasSuffix
}

// String implements [Literal].
func (i IntegerLit) String() string {
	return i.text
}

// Kind implements [Literal].
func (IntegerLit) Kind() Kind {
	return KindInteger
}

// Clone returns a copy of this literal that does not share memory with the
// text it was parsed from.
func (i IntegerLit) Clone() IntegerLit {
	i.text = strings.Clone(i.text)
	return i
}

// Uint64 returns this literal's value, or false if it does not fit in 64 bits.
func (i IntegerLit) Uint64() (uint64, bool) {
	return IntegerValue[uint64](i)
}

// BigInt returns this literal's value as an arbitrary precision integer.
//
// This is the only way to recover the value of literals that do not fit in
// 64 bits, such as those with a `u128` suffix.
func (i IntegerLit) BigInt() *big.Int {
	radix := i.base.Radix()
	value := new(big.Int)
	b := big.NewInt(int64(radix))
	d := new(big.Int)

	digits := i.Digits()
	for j := range len(digits) {
		digit, ok := unicodex.Digit(digits[j], radix)
		if !ok {
			continue
		}
		value.Mul(value, b)
		value.Add(value, d.SetUint64(uint64(digit)))
	}
	return value
}

func (IntegerLit) isLiteral() {}

// IntegerValue returns the value of lit as a T, or false if it does not fit.
//
// Overflow is not a parse error: a literal like `256u8` is grammatically
// valid, and it is up to the caller to decide what to do with it.
func IntegerValue[T constraints.Integer](lit IntegerLit) (T, bool) {
	limit := maxOf[T]()
	radix := lit.base.Radix()
	base := T(radix)

	var value T
	digits := lit.Digits()
	for i := range len(digits) {
		digit, ok := unicodex.Digit(digits[i], radix)
		if !ok {
			continue
		}
		d := T(digit)
		if value > (limit-d)/base {
			return 0, false
		}
		value = value*base + d
	}
	return value, true
}

// maxOf returns the largest value of an integer type.
func maxOf[T constraints.Integer]() T {
	var zero T
	limit := ^zero
	if limit > 0 {
		return limit
	}

	// T is signed, so set every bit but the sign bit, one at a time.
	limit = 0
	for next := T(1); next > limit; next = next<<1 | 1 {
		limit = next
	}
	return limit
}

// Prefix returns the prefix that selects this base, such as "0x".
func (b IntegerBase) Prefix() string {
	switch b {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hexadecimal:
		return "0x"
	default:
		return ""
	}
}

// Radix returns the numeric base this base stands for.
func (b IntegerBase) Radix() byte {
	switch b {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hexadecimal:
		return 16
	default:
		return 10
	}
}

// Bits returns the width of this type in bits.
//
// usize and isize are taken to be 64 bits wide.
func (t IntegerType) Bits() int {
	switch t {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32:
		return 32
	case U128, I128:
		return 128
	default:
		return 64
	}
}

// Signed returns whether this is a signed integer type.
func (t IntegerType) Signed() bool {
	return t >= I8
}

// Range returns the smallest and largest values of this type.
func (t IntegerType) Range() (minimum, maximum *big.Int) {
	one := big.NewInt(1)
	if !t.Signed() {
		maximum = new(big.Int).Lsh(one, uint(t.Bits()))
		return new(big.Int), maximum.Sub(maximum, one)
	}

	maximum = new(big.Int).Lsh(one, uint(t.Bits()-1))
	minimum = new(big.Int).Neg(maximum)
	return minimum, maximum.Sub(maximum, one)
}

// OverflowError is returned by [CheckOverflow] for an integer literal whose
// value does not fit in its suffix type.
type OverflowError struct {
	Literal IntegerLit
	Type    IntegerType
}

var _ report.Diagnose = (*OverflowError)(nil)

// CheckOverflow checks whether the value of an integer literal with a type
// suffix fits in that type.
//
// Returns nil if it does, or if lit has no suffix. The error is meant to be
// reported as a warning: see [report.Report.Warn].
func CheckOverflow(lit IntegerLit) error {
	ty, ok := lit.Suffix()
	if !ok {
		return nil
	}

	_, maximum := ty.Range()
	if lit.BigInt().Cmp(maximum) <= 0 {
		return nil
	}
	return &OverflowError{Literal: lit, Type: ty}
}

// Error implements [error].
func (e *OverflowError) Error() string {
	return fmt.Sprintf("literal out of range for `%s`", e.Type)
}

// Diagnose implements [report.Diagnose].
func (e *OverflowError) Diagnose(d *report.Diagnostic) {
	minimum, maximum := e.Type.Range()
	d.With(
		report.Message("literal out of range for `%s`", e.Type),
		report.Snippetf(
			Span{Start: 0, End: len(e.Literal.text)},
			"the literal `%s` does not fit into the type `%s`", e.Literal.text, e.Type,
		),
		report.Note("the range of `%s` is `%s..=%s`", e.Type, minimum, maximum),
	)
}
