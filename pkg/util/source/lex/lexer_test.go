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
package lex

import (
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

const (
	END_OF uint = iota
	WSPACE
	LBRACE
	RBRACE
	NUMBER
	WORD
)

var rules = []LexRule[rune]{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Some(OneOf(' ', '\t')), WSPACE),
	Rule(Some(Within('0', '9')), NUMBER),
	Rule(Some(Or(Within('a', 'z'), Within('A', 'Z'))), WORD),
	Rule(Eof[rune](), END_OF),
}

func Test_Lexer_01(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, source.NewSpan(0, 0)})
}

func Test_Lexer_02(t *testing.T) {
	checkLexer(t, "()", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{RBRACE, source.NewSpan(1, 2)},
		Token{END_OF, source.NewSpan(2, 2)})
}

func Test_Lexer_03(t *testing.T) {
	checkLexer(t, "(  90)", 0,
		Token{LBRACE, source.NewSpan(0, 1)},
		Token{WSPACE, source.NewSpan(1, 3)},
		Token{NUMBER, source.NewSpan(3, 5)},
		Token{RBRACE, source.NewSpan(5, 6)},
		Token{END_OF, source.NewSpan(6, 6)})
}

func Test_Lexer_04(t *testing.T) {
	checkLexer(t, "AbC12", 0,
		Token{WORD, source.NewSpan(0, 3)},
		Token{NUMBER, source.NewSpan(3, 5)},
		Token{END_OF, source.NewSpan(5, 5)})
}

func Test_Lexer_05(t *testing.T) {
	// Lexing stops at the first unknown character
	checkLexer(t, "ab$cd", 3, Token{WORD, source.NewSpan(0, 2)})
}

func checkLexer(t *testing.T, input string, remaining uint, expected ...Token) {
	lexer := NewLexer([]rune(input), rules...)
	tokens := lexer.Collect()
	//
	assert.Equal(t, expected, tokens)
	assert.Equal(t, remaining, lexer.Remaining())
}
