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
package source

import (
	"fmt"
	"strings"
)

// Text is a named piece of source text, such as a boolean expression typed by
// a user.
type Text struct {
	name     string
	contents []rune
}

// NewText constructs a new source text.
func NewText(name string, contents string) *Text {
	return &Text{name, []rune(contents)}
}

// Name returns the name associated with this text.
func (s *Text) Name() string {
	return s.name
}

// Contents returns the characters of this text.
func (s *Text) Contents() []rune {
	return s.contents
}

// Slice returns the characters covered by a given span.
func (s *Text) Slice(span Span) string {
	end := min(span.end, len(s.contents))
	start := min(span.start, end)
	//
	return string(s.contents[start:end])
}

// SyntaxError constructs a syntax error covering a span of this text.
func (s *Text) SyntaxError(span Span, format string, args ...any) *SyntaxError {
	return &SyntaxError{s, span, fmt.Sprintf(format, args...)}
}

// SyntaxError is an error which retains the span of the offending characters
// within the original text.
type SyntaxError struct {
	text *Text
	span Span
	msg  string
}

// Text returns the source text this error refers to.
func (p *SyntaxError) Text() *Text {
	return p.text
}

// Span returns the offending span.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message being reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.msg)
}

// Highlight renders the source text with a row of carets beneath the
// offending span.  Empty spans (e.g. at the end of input) are given a single
// caret.
func (p *SyntaxError) Highlight() []string {
	var (
		contents = string(p.text.contents)
		offset   = min(p.span.start, len(p.text.contents))
		length   = max(1, p.span.Length())
	)
	//
	return []string{contents, strings.Repeat(" ", offset) + strings.Repeat("^", length)}
}
