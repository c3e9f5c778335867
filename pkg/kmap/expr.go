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
)

// VARIABLES lists the variables which can appear in an expression.
const VARIABLES = "ABCDE"

// MAX_VARIABLES is the largest number of variables a map can have.
const MAX_VARIABLES = uint(len(VARIABLES))

// Expr is a boolean expression over the variables A-E.
type Expr interface {
	// Eval evaluates this expression under an assignment, where bit i of env
	// gives the value of the ith variable (A is bit 0).
	Eval(env uint) bool
	// Vars returns the set of variables used, as a mask in the same format.
	Vars() uint
	// String renders this expression with ' for NOT, · for AND and + for OR.
	String() string
}

// Var is a single variable.
type Var struct {
	Index uint
}

// Const is a constant 0 or 1.
type Const struct {
	Value bool
}

// Not is the complement of an expression.
type Not struct {
	Arg Expr
}

// And is the conjunction of two or more expressions.
type And struct {
	Args []Expr
}

// Or is the disjunction of two or more expressions.
type Or struct {
	Args []Expr
}

// Eval implementation for Expr interface.
func (e *Var) Eval(env uint) bool { return env&(1<<e.Index) != 0 }

// Eval implementation for Expr interface.
func (e *Const) Eval(env uint) bool { return e.Value }

// Eval implementation for Expr interface.
func (e *Not) Eval(env uint) bool { return !e.Arg.Eval(env) }

// Eval implementation for Expr interface.
func (e *And) Eval(env uint) bool {
	for _, arg := range e.Args {
		if !arg.Eval(env) {
			return false
		}
	}
	//
	return true
}

// Eval implementation for Expr interface.
func (e *Or) Eval(env uint) bool {
	for _, arg := range e.Args {
		if arg.Eval(env) {
			return true
		}
	}
	//
	return false
}

// Vars implementation for Expr interface.
func (e *Var) Vars() uint { return 1 << e.Index }

// Vars implementation for Expr interface.
func (e *Const) Vars() uint { return 0 }

// Vars implementation for Expr interface.
func (e *Not) Vars() uint { return e.Arg.Vars() }

// Vars implementation for Expr interface.
func (e *And) Vars() uint { return varsOf(e.Args) }

// Vars implementation for Expr interface.
func (e *Or) Vars() uint { return varsOf(e.Args) }

func (e *Var) String() string {
	return VARIABLES[e.Index : e.Index+1]
}

func (e *Const) String() string {
	if e.Value {
		return "1"
	}
	//
	return "0"
}

func (e *Not) String() string {
	switch e.Arg.(type) {
	case *Var, *Const:
		return e.Arg.String() + "'"
	}
	//
	return "(" + e.Arg.String() + ")'"
}

func (e *And) String() string {
	var parts = make([]string, len(e.Args))
	//
	for i, arg := range e.Args {
		if _, ok := arg.(*Or); ok {
			parts[i] = "(" + arg.String() + ")"
		} else {
			parts[i] = arg.String()
		}
	}
	//
	return strings.Join(parts, "·")
}

func (e *Or) String() string {
	var parts = make([]string, len(e.Args))
	//
	for i, arg := range e.Args {
		parts[i] = arg.String()
	}
	//
	return strings.Join(parts, " + ")
}

func varsOf(args []Expr) uint {
	var vars uint
	//
	for _, arg := range args {
		vars |= arg.Vars()
	}
	//
	return vars
}
