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
package trace

import (
	"fmt"
	"strings"
)

// Kind identifies the role of a fragment within an explanation.
type Kind uint8

const (
	// SECTION marks the start of a new group of steps.
	SECTION Kind = iota
	// STEP is a single computational step.
	STEP
	// NOTE is an informational remark which is not itself a step.
	NOTE
	// BLOCK is preformatted text (e.g. a long division layout) whose lines
	// should be rendered verbatim.
	BLOCK
)

func (k Kind) String() string {
	switch k {
	case SECTION:
		return "section"
	case STEP:
		return "step"
	case NOTE:
		return "note"
	case BLOCK:
		return "block"
	}
	//
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText renders a kind by name, such that JSON output is readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Fragment is a single piece of explanation produced during a computation.
type Fragment struct {
	Kind  Kind     `json:"kind"`
	Text  string   `json:"text"`
	Lines []string `json:"lines,omitempty"`
}

// Trace is the ordered list of fragments produced by a single computation.
type Trace []Fragment

// Sections returns the titles of all sections in this trace, in order.
func (t Trace) Sections() []string {
	var titles []string
	//
	for _, f := range t {
		if f.Kind == SECTION {
			titles = append(titles, f.Text)
		}
	}
	//
	return titles
}

// Contains checks whether any fragment of this trace contains the given text.
func (t Trace) Contains(text string) bool {
	for _, f := range t {
		if strings.Contains(f.Text, text) {
			return true
		}
		//
		for _, l := range f.Lines {
			if strings.Contains(l, text) {
				return true
			}
		}
	}
	//
	return false
}

// String renders this trace as plain indented text.
func (t Trace) String() string {
	var builder strings.Builder
	//
	for _, f := range t {
		switch f.Kind {
		case SECTION:
			fmt.Fprintf(&builder, "== %s ==\n", f.Text)
		case STEP:
			fmt.Fprintf(&builder, "  %s\n", f.Text)
		case NOTE:
			fmt.Fprintf(&builder, "  (%s)\n", f.Text)
		case BLOCK:
			if f.Text != "" {
				fmt.Fprintf(&builder, "  %s:\n", f.Text)
			}
			//
			for _, l := range f.Lines {
				fmt.Fprintf(&builder, "    %s\n", l)
			}
		}
	}
	//
	return builder.String()
}
