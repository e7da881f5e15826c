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

// ParseBool parses text as a boolean literal.
//
// Only the exact spellings `false` and `true` are accepted.
func ParseBool[T Text](text T) (BoolLit, error) {
	s := string(text)
	if err := checkText(s); err != nil {
		return False, err
	}
	return parseBool(s)
}

func parseBool(text string) (BoolLit, error) {
	v, ok := parseBoolLit(text)
	if !ok {
		return False, errorKind(InvalidLiteral)
	}
	return v, nil
}

// Value returns the Go value of this literal.
func (b BoolLit) Value() bool {
	return b == True
}

// Kind implements [Literal].
func (BoolLit) Kind() Kind {
	return KindBool
}

func (BoolLit) isLiteral() {}
