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
	"strings"

	"github.com/consensys/go-bitlab/pkg/util/source"
	"github.com/consensys/go-bitlab/pkg/util/source/lex"
)

// END signals the end of the expression.
const END uint = 0

// WHITESPACE is ignored, and includes underscores.
const WHITESPACE uint = 1

// WORD is a run of letters, which is split into variables and operators.
const WORD uint = 2

// CONSTANT is 0 or 1.
const CONSTANT uint = 3

// LBRACE signals "left brace".
const LBRACE uint = 4

// RBRACE signals "right brace".
const RBRACE uint = 5

// OR is "+", "|" or one of the words OR, U, V.
const OR uint = 6

// AND is ".", "*", "·", "&" or one of the words AND, X.
const AND uint = 7

// NOT is "!", "~", "¬" or the word NOT.
const NOT uint = 8

// PRIME is a postfix complement.
const PRIME uint = 9

// VARIABLE is a single letter A-E.  Variables are only produced when splitting
// words.
const VARIABLE uint = 10

var whitespace lex.Scanner[rune] = lex.Some(lex.OneOf(' ', '\t', '\n', '\r', '_'))
var letters lex.Scanner[rune] = lex.Some(lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z')))

// Rules for tokenising expressions
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(letters, WORD),
	lex.Rule(lex.OneOf('0', '1'), CONSTANT),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.OneOf('+', '|'), OR),
	lex.Rule(lex.OneOf('.', '*', '·', '&', '∧'), AND),
	lex.Rule(lex.OneOf('!', '~', '¬'), NOT),
	lex.Rule(lex.OneOf('\'', '’'), PRIME),
	lex.Rule(lex.Eof[rune](), END),
}

// Lex tokenises an expression, discarding whitespace and splitting words into
// variables and operators.  For example, "ab'" becomes A, B and ', whilst
// "A and B" becomes A, AND and B.
func Lex(text *source.Text) ([]lex.Token, *source.SyntaxError) {
	var (
		lexer  = lex.NewLexer(text.Contents(), rules...)
		tokens = lexer.Collect()
		output []lex.Token
	)
	//
	if lexer.Remaining() > 0 {
		start := int(lexer.Index())
		return nil, text.SyntaxError(source.NewSpan(start, start+1), "unknown character")
	}
	//
	for _, token := range tokens {
		switch token.Kind {
		case WHITESPACE:
			continue
		case WORD:
			words, err := splitWord(text, token.Span)
			if err != nil {
				return nil, err
			}
			//
			output = append(output, words...)
		default:
			output = append(output, token)
		}
	}
	//
	return output, nil
}

// Classify a word as an operator, or split it into single letter variables
// (with X acting as AND).
func splitWord(text *source.Text, span source.Span) ([]lex.Token, *source.SyntaxError) {
	var word = strings.ToUpper(text.Slice(span))
	//
	switch word {
	case "AND", "X":
		return []lex.Token{{Kind: AND, Span: span}}, nil
	case "OR", "U", "V":
		return []lex.Token{{Kind: OR, Span: span}}, nil
	case "NOT":
		return []lex.Token{{Kind: NOT, Span: span}}, nil
	}
	//
	var tokens = make([]lex.Token, len(word))
	//
	for i, c := range word {
		letter := source.NewSpan(span.Start()+i, span.Start()+i+1)
		//
		switch {
		case c == 'X':
			tokens[i] = lex.Token{Kind: AND, Span: letter}
		case strings.ContainsRune(VARIABLES, c):
			tokens[i] = lex.Token{Kind: VARIABLE, Span: letter}
		default:
			return nil, text.SyntaxError(letter, "unknown variable (expected A-E)")
		}
	}
	//
	return tokens, nil
}
