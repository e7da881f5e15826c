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
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/rustlit/internal/ext/stringsx"
	"github.com/bufbuild/rustlit/internal/ext/unicodex"
	"github.com/bufbuild/rustlit/internal/ext/unsafex"
)

// maxRawHashes is the largest number of `#` a raw string delimiter may have.
const maxRawHashes = 255

// unitErrors are the error kinds reported by parseUnit, which differ between
// char and byte literals.
type unitErrors struct {
	unterminated, empty, overlong ErrorKind
}

// parseUnit parses a char or byte literal: a single unit between single
// quotes. start is the index just past the opening quote.
func parseUnit[E rune | byte, U unit[E]](text string, start int, errs unitErrors) (E, error) {
	var (
		u    U
		zero E
	)

	if len(text) == start || text[len(text)-1] != '\'' {
		return zero, errorKind(errs.unterminated)
	}

	inner := text[start : len(text)-1]
	if inner == "" {
		return zero, errorKind(errs.empty)
	}

	var (
		value E
		n     int
	)
	switch first := inner[0]; {
	case first == '\'':
		return zero, errorAt(UnescapedSingleQuote, start)
	case first == '\n' || first == '\t' || first == '\r':
		return zero, errorAt(UnescapedSpecialWhitespace, start)
	case first == '\\':
		var err error
		value, n, err = unescape[E, U](inner, start)
		if err != nil {
			return zero, err
		}
	case !u.unicode() && !unicodex.IsASCII(first):
		return zero, errorAt(NonAsciiInByteLiteral, start)
	default:
		var r rune
		r, n = utf8.DecodeRuneInString(inner)
		value = u.fromRune(r)
	}

	if n < len(inner) {
		return zero, errorSpan(errs.overlong, start+n, len(text)-1)
	}
	return value, nil
}

// quoted is the representation shared by [StringLit] and [ByteStringLit].
type quoted struct {
	text   string
	prefix int // Length of the prefix before the `r` or quote: 1 for `b`.

	// The body with its escapes resolved. Only set if it differs from the
	// body as written, which is only possible for non-raw literals.
	value   string
	decoded bool

	raw    bool
	hashes int
}

// parseQuoted parses a string or byte string literal. prefix is the length of
// the prefix before the `r` or opening quote, which the caller has checked.
func parseQuoted[E rune | byte, U unit[E]](text string, prefix int) (quoted, error) {
	q := quoted{text: text, prefix: prefix}

	if text[prefix] == 'r' {
		hashes, err := scanRaw[E, U](text, prefix+1)
		if err != nil {
			return quoted{}, err
		}
		q.raw, q.hashes = true, hashes
		return q, nil
	}

	value, decoded, err := scanEscaped[E, U](text, prefix+1)
	if err != nil {
		return quoted{}, err
	}
	q.value, q.decoded = value, decoded
	return q, nil
}

// scanRaw validates a raw string literal. start is the index just past the
// `r`. Returns the number of `#` in the delimiter.
func scanRaw[E rune | byte, U unit[E]](text string, start int) (int, error) {
	var u U

	hashes := stringsx.Span(text[start:], isHash)
	open := start + hashes
	if open == len(text) || text[open] != '"' {
		return 0, errorKind(InvalidLiteral)
	}
	if hashes > maxRawHashes {
		return 0, errorSpan(TooManyHashes, start, open)
	}

	delim := text[start:open]
	for i := open + 1; i < len(text); i++ {
		b := text[i]
		switch {
		case b == '"' && strings.HasPrefix(text[i+1:], delim):
			if end := i + 1 + hashes; end < len(text) {
				return 0, errorSpan(UnexpectedChar, end, len(text))
			}
			return hashes, nil
		case b == '\r' && (i+1 == len(text) || text[i+1] != '\n'):
			return 0, errorAt(IsolatedCr, i)
		case !u.unicode() && !unicodex.IsASCII(b):
			return 0, errorAt(NonAsciiInByteLiteral, i)
		}
	}

	return 0, errorKind(UnterminatedRawString)
}

// scanEscaped validates and decodes a non-raw string literal. start is the
// index just past the opening quote.
//
// Returns the decoded body, and whether it differs from the body as written.
// If it does not, no decoded body is built.
func scanEscaped[E rune | byte, U unit[E]](text string, start int) (string, bool, error) {
	var (
		u       U
		buf     []byte
		decoded bool
		// The end of the last escape or continuation, from which the body is
		// copied verbatim up to the next one.
		last = start
	)

	end := len(text) - 1
	for i := start; i < end; {
		switch b := text[i]; {
		case b == '\\' && i+1 < end && text[i+1] == '\n':
			buf = append(buf, text[last:i]...)
			i = skipContinuation(text[:end], i+2)
			last, decoded = i, true

		case b == '\\':
			e, n, err := unescape[E, U](text[i:end], i)
			if err != nil {
				return "", false, err
			}
			buf = append(buf, text[last:i]...)
			buf = u.appendTo(buf, e)
			i += n
			last, decoded = i, true

		case b == '\r' && text[i+1] != '\n':
			return "", false, errorAt(IsolatedCr, i)
		case b == '"':
			return "", false, errorSpan(UnexpectedChar, i+1, len(text))
		case !u.unicode() && !unicodex.IsASCII(b):
			return "", false, errorAt(NonAsciiInByteLiteral, i)

		default:
			i++
		}
	}

	if len(text) == start || text[end] != '"' {
		return "", false, errorKind(UnterminatedString)
	}
	if !decoded {
		return "", false, nil
	}

	buf = append(buf, text[last:end]...)
	return unsafex.StringAlias(buf), true, nil
}

// skipContinuation returns the index of the first byte at or after i that is
// not part of the whitespace elided by a string continuation.
//
// A lone `\r` is not whitespace here: it stops the skip, and the caller then
// reports it.
func skipContinuation(text string, i int) int {
	for i < len(text) {
		switch {
		case text[i] == ' ' || text[i] == '\t' || text[i] == '\n':
			i++
		case strings.HasPrefix(text[i:], "\r\n"):
			i += 2
		default:
			return i
		}
	}
	return i
}

// body returns the text between the delimiters.
func (q quoted) body() string {
	start := q.prefix + 1
	end := len(q.text) - 1
	if q.raw {
		start += q.hashes + 1
		end -= q.hashes
	}
	return q.text[start:end]
}

// decodedBody returns the body with its escapes resolved.
func (q quoted) decodedBody() string {
	if q.decoded {
		return q.value
	}
	return q.body()
}

// IsRaw returns whether this is a raw literal, such as `r#"..."#`.
func (q quoted) IsRaw() bool {
	return q.raw
}

// Hashes returns the number of `#` in this literal's delimiter. This is zero
// for literals that are not raw, and for raw literals like `r"..."`.
func (q quoted) Hashes() int {
	return q.hashes
}

// String implements [Literal].
func (q quoted) String() string {
	return q.text
}

func (q quoted) clone() quoted {
	q.text = strings.Clone(q.text)
	q.value = strings.Clone(q.value)
	return q
}

func (quoted) isLiteral() {}
