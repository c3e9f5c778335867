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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Text_01(t *testing.T) {
	text := NewText("expr", "A + B'")
	span := NewSpan(4, 6)
	//
	assert.Equal(t, "B'", text.Slice(span))
	assert.Equal(t, "", text.Slice(NewSpan(6, 9)))
	assert.Equal(t, "expr", text.Name())
}

func Test_SyntaxError_01(t *testing.T) {
	text := NewText("expr", "A + $")
	err := text.SyntaxError(NewSpan(4, 5), "unknown character '%s'", "$")
	//
	assert.Equal(t, "4:5:unknown character '$'", err.Error())
	assert.Equal(t, []string{"A + $", "    ^"}, err.Highlight())
}

func Test_SyntaxError_02(t *testing.T) {
	text := NewText("expr", "(A")
	err := text.SyntaxError(NewSpan(2, 2), "expected ')'")
	//
	assert.Equal(t, []string{"(A", "  ^"}, err.Highlight())
}

func Test_Span_01(t *testing.T) {
	a := NewSpan(1, 3)
	b := NewSpan(2, 7)
	c := a.Join(b)
	//
	assert.Equal(t, 1, c.Start())
	assert.Equal(t, 7, c.End())
	assert.Equal(t, 6, c.Length())
	assert.Panics(t, func() { NewSpan(3, 1) })
}
