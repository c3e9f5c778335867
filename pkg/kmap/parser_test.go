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
package kmap

import (
	"errors"
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "a'b + !(c+d)", "A'·B + (C + D)'")
	checkParse(t, "AB'C", "A·B'·C")
	checkParse(t, "A and B or not C", "A·B + C'")
	checkParse(t, "A x B u C", "A·B + C")
	checkParse(t, "a*b | c&d", "A·B + C·D")
	checkParse(t, "(A+B)(C+D)", "(A + B)·(C + D)")
	checkParse(t, "((A)')'", "(A')'")
	checkParse(t, "A_B + 1", "A·B + 1")
	checkParse(t, "~A ∧ ¬B", "A'·B'")
}

func Test_Parse_02(t *testing.T) {
	expr, err := Parse("AB + C'")
	require.NoError(t, err)
	assert.Equal(t, uint(0b111), expr.Vars())
	// A=1, B=1
	assert.True(t, expr.Eval(0b011))
	// C=1 only
	assert.False(t, expr.Eval(0b100))
	assert.True(t, expr.Eval(0b000))
}

func Test_Parse_03(t *testing.T) {
	checkSyntaxError(t, "A + F", "unknown variable (expected A-E)", 4, 5)
	checkSyntaxError(t, "A + ", "unexpected end of expression", 4, 4)
	checkSyntaxError(t, "(A + B", "expected )", 6, 6)
	checkSyntaxError(t, "A + B)", "unexpected token", 5, 6)
	checkSyntaxError(t, "A # B", "unknown character", 2, 3)
	checkSyntaxError(t, "A + +", "expected variable, constant or (", 4, 5)
}

func Test_Parse_04(t *testing.T) {
	_, err := Parse("A + ")
	require.Error(t, err)
	//
	var serr *source.SyntaxError
	//
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, []string{"A + ", "    ^"}, serr.Highlight())
}

func checkParse(t *testing.T, input string, expected string) {
	t.Helper()
	//
	expr, err := Parse(input)
	require.NoError(t, err, input)
	assert.Equal(t, expected, expr.String(), input)
}

func checkSyntaxError(t *testing.T, input string, msg string, start int, end int) {
	t.Helper()
	//
	_, err := Parse(input)
	require.Error(t, err, input)
	assert.True(t, diag.Is(err, diag.INVALID_INPUT), input)
	//
	var serr *source.SyntaxError
	//
	require.True(t, errors.As(err, &serr), input)
	//
	span := serr.Span()
	assert.Equal(t, msg, serr.Message(), input)
	assert.Equal(t, start, span.Start(), input)
	assert.Equal(t, end, span.End(), input)
}
