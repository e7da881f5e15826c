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

package rustlit_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/rustlit"
)

func TestIntegerValue(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	parse := func(text string) rustlit.IntegerLit {
		lit, err := rustlit.ParseInteger(text)
		require.NoError(t, err)
		return lit
	}

	u8, ok := rustlit.IntegerValue[uint8](parse("255"))
	assert.True(ok)
	assert.Equal(uint8(math.MaxUint8), u8)
	_, ok = rustlit.IntegerValue[uint8](parse("256"))
	assert.False(ok)
	_, ok = rustlit.IntegerValue[uint8](parse("0x1_00"))
	assert.False(ok)

	i8, ok := rustlit.IntegerValue[int8](parse("127"))
	assert.True(ok)
	assert.Equal(int8(math.MaxInt8), i8)
	_, ok = rustlit.IntegerValue[int8](parse("128"))
	assert.False(ok)

	i64, ok := rustlit.IntegerValue[int64](parse("0x7fff_ffff_ffff_ffff"))
	assert.True(ok)
	assert.Equal(int64(math.MaxInt64), i64)
	_, ok = rustlit.IntegerValue[int64](parse("0x8000_0000_0000_0000"))
	assert.False(ok)

	u64, ok := rustlit.IntegerValue[uint64](parse("0xffff_ffff_ffff_ffff"))
	assert.True(ok)
	assert.Equal(uint64(math.MaxUint64), u64)
	_, ok = parse("18446744073709551616").Uint64()
	assert.False(ok)

	// Extraction does not look at the suffix.
	u16, ok := rustlit.IntegerValue[uint16](parse("300u8"))
	assert.True(ok)
	assert.Equal(uint16(300), u16)

	// Leading zeros are not significant.
	u8, ok = rustlit.IntegerValue[uint8](parse("0b0000_0000_1111_1111"))
	assert.True(ok)
	assert.Equal(uint8(math.MaxUint8), u8)

	// Repeated extraction gives the same answer.
	lit := parse("0o17")
	first, _ := rustlit.IntegerValue[int](lit)
	second, _ := rustlit.IntegerValue[int](lit)
	assert.Equal(15, first)
	assert.Equal(first, second)
}

func TestBigInt(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	lit, err := rustlit.ParseInteger("0xffff_ffff_ffff_ffff_ffff_ffff_ffff_ffffu128")
	require.NoError(t, err)
	_, ok := lit.Uint64()
	assert.False(ok)

	want := new(big.Int).Lsh(big.NewInt(1), 128)
	want.Sub(want, big.NewInt(1))
	assert.Zero(want.Cmp(lit.BigInt()), "got %v", lit.BigInt())
	assert.NoError(rustlit.CheckOverflow(lit))
}

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ty       rustlit.IntegerType
		min, max string
		bits     int
		signed   bool
	}{
		{rustlit.U8, "0", "255", 8, false},
		{rustlit.I8, "-128", "127", 8, true},
		{rustlit.U16, "0", "65535", 16, false},
		{rustlit.I32, "-2147483648", "2147483647", 32, true},
		{rustlit.Usize, "0", "18446744073709551615", 64, false},
		{rustlit.Isize, "-9223372036854775808", "9223372036854775807", 64, true},
		{rustlit.I128, "-170141183460469231731687303715884105728", "170141183460469231731687303715884105727", 128, true},
	}

	for _, tt := range tests {
		t.Run(tt.ty.String(), func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			minimum, maximum := tt.ty.Range()
			assert.Equal(tt.min, minimum.String())
			assert.Equal(tt.max, maximum.String())
			assert.Equal(tt.bits, tt.ty.Bits())
			assert.Equal(tt.signed, tt.ty.Signed())
		})
	}
}

func TestCheckOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		overflow bool
	}{
		{"255u8", false},
		{"256u8", true},
		{"0xffu8", false},
		{"0x1_00u8", true},
		{"127i8", false},
		// Literals have no sign, so the largest negative value is out of
		// reach without an explicit negation.
		{"128i8", true},
		{"1_000_000", false},
		{"18446744073709551615u64", false},
		{"18446744073709551616u64", true},
		{"340282366920938463463374607431768211456u128", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert := assert.New(t)

			lit, err := rustlit.ParseInteger(tt.text)
			require.NoError(t, err)
			// The lint agrees with value extraction at the suffix width.
			if fits, ok := fitsSuffix(lit); ok {
				assert.Equal(tt.overflow, !fits)
			}

			err = rustlit.CheckOverflow(lit)
			if !tt.overflow {
				assert.NoError(err)
				return
			}

			var overflow *rustlit.OverflowError
			if assert.True(errors.As(err, &overflow)) {
				ty, _ := lit.Suffix()
				assert.Equal(ty, overflow.Type)
				assert.Equal(tt.text, overflow.Literal.String())
				assert.EqualError(err, "literal out of range for `"+ty.String()+"`")
			}
		})
	}
}

// fitsSuffix reports whether lit's value fits the Go type matching its
// suffix. Returns false for the second value if there is no such type.
func fitsSuffix(lit rustlit.IntegerLit) (fits, ok bool) {
	ty, ok := lit.Suffix()
	if !ok {
		return false, false
	}
	switch ty {
	case rustlit.U8:
		_, fits = rustlit.IntegerValue[uint8](lit)
	case rustlit.U16:
		_, fits = rustlit.IntegerValue[uint16](lit)
	case rustlit.U32:
		_, fits = rustlit.IntegerValue[uint32](lit)
	case rustlit.U64, rustlit.Usize:
		_, fits = rustlit.IntegerValue[uint64](lit)
	case rustlit.I8:
		_, fits = rustlit.IntegerValue[int8](lit)
	case rustlit.I16:
		_, fits = rustlit.IntegerValue[int16](lit)
	case rustlit.I32:
		_, fits = rustlit.IntegerValue[int32](lit)
	case rustlit.I64, rustlit.Isize:
		_, fits = rustlit.IntegerValue[int64](lit)
	default:
		return false, false
	}
	return fits, true
}
