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

package report

import "fmt"

// style is a pair of ANSI escapes for one color, in normal and bold weight.
type style struct {
	normal, bold string
}

// ansi returns the style for one of the eight standard ANSI foreground
// colors, given its SGR code (30 to 37).
func ansi(code int) style {
	return style{
		normal: fmt.Sprintf("\033[0;%dm", code),
		bold:   fmt.Sprintf("\033[1;%dm", code),
	}
}

// styleSheet is the colors used for pretty-rendering diagnostics.
//
// The zero value renders without any color.
type styleSheet struct {
	reset string

	// Used for "accents" such as non-primary span underlines, line numbers,
	// and other rendering details to clearly separate them from the source
	// text (which appears in white).
	accent style

	levels [noteLevel + 1]style
}

func newStyleSheet(r Renderer) styleSheet {
	if !r.Colorize {
		return styleSheet{}
	}

	c := styleSheet{
		reset:  "\033[0m",
		accent: ansi(34), // Blue.
	}
	c.levels[Error] = ansi(31)   // Red.
	c.levels[Warning] = ansi(33) // Yellow.
	c.levels[Remark] = ansi(36)  // Cyan.
	c.levels[noteLevel] = c.levels[Remark]

	if r.WarningsAreErrors {
		c.levels[Warning] = c.levels[Error]
	}
	return c
}

// level returns the style for diagnostics of the given level.
func (c styleSheet) level(l Level) style {
	if l < 0 || int(l) >= len(c.levels) {
		return style{}
	}
	return c.levels[l]
}
