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

// ByteStringLit is a byte string literal, such as `b"\x00\xff"` or
// `br"raw"`.
type ByteStringLit struct {
	quoted
}

// ParseByteString parses text as a byte string literal, raw or not.
func ParseByteString[T Text](text T) (ByteStringLit, error) {
	s := string(text)
	if err := checkText(s); err != nil {
		return ByteStringLit{}, err
	}
	if !strings.HasPrefix(s, `b"`) && !strings.HasPrefix(s, "br") {
		return ByteStringLit{}, errorKind(InvalidByteStringLiteralStart)
	}
	return parseByteString(s)
}

func parseByteString(text string) (ByteStringLit, error) {
	q, err := parseQuoted[byte, byteUnit](text, 1)
	if err != nil {
		return ByteStringLit{}, err
	}
	return ByteStringLit{q}, nil
}

// Value returns the bytes this literal stands for, with escapes resolved.
//
// The returned slice is a fresh copy that the caller may modify.
func (b ByteStringLit) Value() []byte {
	return []byte(b.decodedBody())
}

// ValueString is like [ByteStringLit.Value], but returns the bytes as a
// string, without copying them.
func (b ByteStringLit) ValueString() string {
	return b.decodedBody()
}

// Kind implements [Literal].
func (ByteStringLit) Kind() Kind {
	return KindByteString
}

// Clone returns a copy of this literal that does not share memory with the
// text it was parsed from.
func (b ByteStringLit) Clone() ByteStringLit {
	return ByteStringLit{b.clone()}
}
