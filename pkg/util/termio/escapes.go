// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import "fmt"

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_BLUE represents blue
const TERM_BLUE = uint(4)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape is an ANSI SGR escape sequence under construction.
type AnsiEscape struct {
	codes []uint
}

// NewAnsiEscape constructs an empty escape.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs an escape which resets all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// Bold adds the bold attribute.
func (p AnsiEscape) Bold() AnsiEscape {
	return p.with(1)
}

// Underline adds the underline attribute.
func (p AnsiEscape) Underline() AnsiEscape {
	return p.with(4)
}

// FgColour sets the foreground colour.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(30 + col)
}

// BgColour sets the background colour.
func (p AnsiEscape) BgColour(col uint) AnsiEscape {
	return p.with(40 + col)
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	codes := make([]uint, len(p.codes), len(p.codes)+1)
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, code)}
}

// Build constructs the final escape sequence.
func (p AnsiEscape) Build() string {
	var text = "\033["
	//
	for i, c := range p.codes {
		if i != 0 {
			text += ";"
		}
		//
		text += fmt.Sprintf("%d", c)
	}
	//
	return text + "m"
}

// Colour wraps some text in a given escape, followed by a reset.
func Colour(escape AnsiEscape, text string) string {
	return escape.Build() + text + ResetAnsiEscape().Build()
}
