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
	"testing"

	"github.com/bufbuild/rustlit"
	"github.com/bufbuild/rustlit/internal/fuzztesting"
	"github.com/bufbuild/rustlit/report"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"true", "0b1010u8", "0x_ff_i64", "1_000", "3.14f32", "1e-7", "9.",
		`'a'`, `'\u{1F602}'`, `b'\xff'`, `"a\nb"`, "\"a\\\n  b\"",
		`r#"x"#`, `br##"a"b"##`, `b"\x00"`, "", `'''`, `"\u{D800}"`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, input []byte) {
		fuzztesting.RunWithTimeout(t, func(context.Context) {
			if err := checkInput(input); err != nil {
				t.Fatal(err)
			}

			// Rendering a failed parse must not panic either.
			text := string(input)
			if _, err := rustlit.Parse(text); err != nil {
				report.Renderer{}.RenderString(rustlit.Diagnose(text, err))
			}
		})
	})
}
