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

import "github.com/consensys/go-bitlab/pkg/util/source"

// Token associates a kind with a span of the input.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule maps the items accepted by a scanner to a token kind.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a new lexing rule.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer splits an input sequence into tokens by repeatedly applying the first
// rule which matches at the current position.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Set once the end of input has been tokenised
	done bool
}

// NewLexer constructs a new lexer for a given input and set of rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, false}
}

// Remaining returns the number of items which could not be tokenised.  This
// is non-zero only when lexing stopped at an item no rule accepts.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Index returns the position of the next item to be tokenised.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Next attempts to produce the next token, returning false when either the end
// of input was already reached or no rule matches.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.done || p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			token := Token{r.kind, source.NewSpan(p.index, end)}
			// End of input is signalled by an empty match at the very end
			p.done = p.index == len(p.items)
			p.index = end
			//
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect tokenises all remaining input.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for {
		token, ok := p.Next()
		if !ok {
			return tokens
		}
		//
		tokens = append(tokens, token)
	}
}
