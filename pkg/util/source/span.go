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

// Span identifies a contiguous range of characters within some source text,
// by physical index rather than by string slice.
type Span struct {
	// Index of the first character.
	start int
	// One past the index of the last character.
	end int
}

// NewSpan constructs a new span, checking that it is well formed.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the index of the first character covered by this span.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the index of the last character covered by this span.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p *Span) Length() int {
	return p.end - p.start
}

// Join returns the smallest span enclosing both this span and another.
func (p *Span) Join(other Span) Span {
	return Span{min(p.start, other.start), max(p.end, other.end)}
}
