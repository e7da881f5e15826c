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
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/rustlit"
)

// alphabet is a set of bytes that reach every branch of the parsers when
// combined three or four at a time.
const alphabet = "0159_abefirtuxoEF.+-'\"\\#{}\n\r\t é\xff"

func TestExhaustiveASCII(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("skipping exhaustive test in short mode")
	}

	// Every input of up to three ASCII bytes, split by first byte across
	// workers.
	grp, ctx := errgroup.WithContext(context.Background())
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for first := range 128 {
		grp.Go(func() error {
			buf := []byte{byte(first), 0, 0}
			if err := checkInput(buf[:1]); err != nil {
				return err
			}
			for second := range 128 {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				buf[1] = byte(second)
				if err := checkInput(buf[:2]); err != nil {
					return err
				}
				for third := range 128 {
					buf[2] = byte(third)
					if err := checkInput(buf); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	assert.NoError(t, grp.Wait())
}

func TestExhaustiveAlphabet(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("skipping exhaustive test in short mode")
	}

	var grp errgroup.Group
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for _, a := range []byte(alphabet) {
		grp.Go(func() error {
			buf := make([]byte, 4)
			buf[0] = a
			for _, b := range []byte(alphabet) {
				buf[1] = b
				for _, c := range []byte(alphabet) {
					buf[2] = c
					for _, d := range []byte(alphabet) {
						buf[3] = d
						if err := checkInput(buf); err != nil {
							return err
						}
					}
				}
			}
			return nil
		})
	}
	assert.NoError(t, grp.Wait())
}

func TestAdversarial(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`'\u{`,
		`'\u{1`,
		`"\u{`,
		`"\x`,
		`"\x4`,
		`"\`,
		`b"\`,
		`'\`,
		`b'\`,
		`r#`,
		`br#`,
		`r#"`,
		`r#""`,
		`br##"a"#`,
		"\"\r",
		"r\"\r",
		"\"\\\n",
		"\"\\\n\r",
		"0x",
		"0b_",
		"1e",
		"1e+",
		"1.",
		"1._",
		"1.e",
		strings.Repeat("9", 1000),
		strings.Repeat("_", 1000),
		"0x" + strings.Repeat("f", 100) + "u128",
		"r" + strings.Repeat("#", 300),
		`"` + strings.Repeat(`\n`, 1000) + `"`,
		`"` + strings.Repeat("\\\n", 1000) + `"`,
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%.20q", input), func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, checkInput([]byte(input)))
		})
	}
}

// checkInput runs input through every parser. It fails if any of them
// panics, returns an error that is not a well-formed [*rustlit.ParseError],
// or returns a literal that does not round-trip.
func checkInput(input []byte) (err error) {
	text := string(input)
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%q: panic: %v", text, p)
		}
	}()

	checks := []func() error{
		func() error {
			lit, err := wrap(rustlit.ParseBool(input))
			return checkResult(text, rustlit.KindBool, lit, err)
		},
		func() error {
			lit, err := wrap(rustlit.ParseInteger(input))
			return checkResult(text, rustlit.KindInteger, lit, err)
		},
		func() error {
			lit, err := wrap(rustlit.ParseFloat(input))
			return checkResult(text, rustlit.KindFloat, lit, err)
		},
		func() error {
			lit, err := wrap(rustlit.ParseChar(input))
			return checkResult(text, rustlit.KindChar, lit, err)
		},
		func() error {
			lit, err := wrap(rustlit.ParseByte(input))
			return checkResult(text, rustlit.KindByte, lit, err)
		},
		func() error {
			lit, err := wrap(rustlit.ParseString(input))
			return checkResult(text, rustlit.KindString, lit, err)
		},
		func() error {
			lit, err := wrap(rustlit.ParseByteString(input))
			return checkResult(text, rustlit.KindByteString, lit, err)
		},
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	lit, err := rustlit.Parse(input)
	if err != nil {
		return checkParseError(text, err)
	}
	if lit == nil {
		return fmt.Errorf("%q: nil literal without error", text)
	}
	return checkResult(text, lit.Kind(), lit, nil)
}

// wrap adapts the results of a per-kind parser to those of [rustlit.Parse].
func wrap[L rustlit.Literal](lit L, err error) (rustlit.Literal, error) {
	return lit, err
}

func checkResult(text string, kind rustlit.Kind, lit rustlit.Literal, err error) error {
	if err != nil {
		return checkParseError(text, err)
	}
	if lit.Kind() != kind {
		return fmt.Errorf("%q: got kind %v, want %v", text, lit.Kind(), kind)
	}
	if lit.String() != text {
		return fmt.Errorf("%q: round trip gave %q", text, lit.String())
	}
	if clone := rustlit.Clone(lit); clone.Kind() != kind || clone.String() != text {
		return fmt.Errorf("%q: clone gave %v %q", text, clone.Kind(), clone.String())
	}
	if kind == rustlit.KindFloat {
		// ParseFloat also accepts integers, which Parse does not classify as
		// floats.
		return nil
	}

	again, err := rustlit.Parse(lit.String())
	if err != nil {
		return fmt.Errorf("%q: reparse failed: %w", text, err)
	}
	if again.Kind() != kind {
		return fmt.Errorf("%q: reparse gave kind %v, want %v", text, again.Kind(), kind)
	}
	return nil
}

func checkParseError(text string, err error) error {
	var perr *rustlit.ParseError
	if !errors.As(err, &perr) {
		return fmt.Errorf("%q: unexpected error type %T", text, err)
	}
	span, ok := perr.Span()
	if ok && (span.Start < 0 || span.Start > span.End || span.End > len(text)) {
		return fmt.Errorf("%q: %v has span %v out of bounds", text, perr.Kind(), span)
	}
	return nil
}
