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

	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/source"
	"github.com/consensys/go-bitlab/pkg/util/source/lex"
)

// Parse a boolean expression over the variables A-E (in either case).  OR is
// written "+", "|", OR, U or V; AND is written ".", "*", "·", "&", AND, X or
// simply by adjacency (e.g. "AB"); NOT is written as a prefix "!", "~", "¬",
// NOT or as a postfix "'".  Syntax errors are reported as an INVALID_INPUT
// error wrapping a *source.SyntaxError.
func Parse(input string) (Expr, error) {
	var text = source.NewText("expression", input)
	//
	tokens, err := Lex(text)
	if err != nil {
		return nil, diag.Wrap(diag.INVALID_INPUT, err)
	}
	//
	parser := &Parser{text, tokens, 0}
	//
	expr, err := parser.Parse()
	if err != nil {
		return nil, diag.Wrap(diag.INVALID_INPUT, err)
	}
	//
	return expr, nil
}

// Parser is a recursive descent parser for boolean expressions, operating on
// the tokens produced by Lex.  OR binds loosest, then AND, then the prefix and
// postfix complements.
type Parser struct {
	text   *source.Text
	tokens []lex.Token
	index  int
}

// Parse an entire expression, which must consume every token.
func (p *Parser) Parse() (Expr, *source.SyntaxError) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	//
	if token := p.lookahead(); token.Kind != END {
		return nil, p.syntaxError(token, "unexpected token")
	}
	//
	return expr, nil
}

func (p *Parser) parseOr() (Expr, *source.SyntaxError) {
	var args []Expr
	//
	for {
		arg, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
		//
		if p.lookahead().Kind != OR {
			break
		}
		//
		p.index++
	}
	//
	if len(args) == 1 {
		return args[0], nil
	}
	//
	return &Or{args}, nil
}

func (p *Parser) parseAnd() (Expr, *source.SyntaxError) {
	var args []Expr
	//
	for {
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
		// Explicit operator, or adjacency
		if kind := p.lookahead().Kind; kind == AND {
			p.index++
		} else if kind != VARIABLE && kind != CONSTANT && kind != LBRACE && kind != NOT {
			break
		}
	}
	//
	if len(args) == 1 {
		return args[0], nil
	}
	//
	return &And{args}, nil
}

func (p *Parser) parseUnary() (Expr, *source.SyntaxError) {
	if p.lookahead().Kind == NOT {
		p.index++
		//
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return &Not{arg}, nil
	}
	//
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	//
	for p.lookahead().Kind == PRIME {
		p.index++
		expr = &Not{expr}
	}
	//
	return expr, nil
}

func (p *Parser) parsePrimary() (Expr, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case VARIABLE:
		p.index++
		name := strings.ToUpper(p.text.Slice(token.Span))
		//
		return &Var{uint(strings.Index(VARIABLES, name))}, nil
	case CONSTANT:
		p.index++
		//
		return &Const{p.text.Slice(token.Span) == "1"}, nil
	case LBRACE:
		p.index++
		//
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		//
		if closing := p.lookahead(); closing.Kind != RBRACE {
			return nil, p.syntaxError(closing, "expected )")
		}
		//
		p.index++
		//
		return expr, nil
	case END:
		return nil, p.syntaxError(token, "unexpected end of expression")
	}
	//
	return nil, p.syntaxError(token, "expected variable, constant or (")
}

// Get the next token, or END if none remain.
func (p *Parser) lookahead() lex.Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	//
	end := len(p.text.Contents())
	//
	return lex.Token{Kind: END, Span: source.NewSpan(end, end)}
}

func (p *Parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.text.SyntaxError(token.Span, "%s", msg)
}
