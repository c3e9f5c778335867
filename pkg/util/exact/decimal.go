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
package exact

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// DefaultPrecision is the default number of significant decimal digits used
// when none is given.  This is enough to represent every finite double
// precision value exactly (the smallest subnormal needs 751 digits).
const DefaultPrecision = 1200

// NewContext constructs a fresh arithmetic context with a given precision (in
// significant decimal digits).  Contexts are never shared between
// computations.
func NewContext(precision uint32) *apd.Context {
	if precision == 0 {
		precision = DefaultPrecision
	}
	//
	return apd.BaseContext.WithPrecision(precision)
}

// Widen returns a context with at least the given precision.  The original
// context is returned unchanged when it is already precise enough.
func Widen(ctx *apd.Context, precision uint32) *apd.Context {
	if ctx.Precision >= precision {
		return ctx
	}
	//
	return ctx.WithPrecision(precision)
}

// Parse converts a decimal string into an exact decimal.  The accepted syntax
// is an optional sign, digits with at most one decimal point, and an optional
// exponent (e.g. "-13.625", ".5", "2.5e-3").  Whitespace and '_' separators
// are ignored.
func Parse(text string) (*apd.Decimal, error) {
	text = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '_' {
			return -1
		}
		//
		return r
	}, text)
	//
	if err := validate(text); err != nil {
		return nil, err
	}
	//
	d, _, err := apd.NewFromString(strings.TrimPrefix(text, "+"))
	if err != nil {
		return nil, diag.Invalid("malformed decimal \"%s\"", text)
	}
	//
	return d, nil
}

func validate(text string) error {
	var (
		index  = 0
		digits = 0
		points = 0
	)
	//
	if text == "" {
		return diag.Invalid("decimal input is empty")
	}
	//
	if text[0] == '-' || text[0] == '+' {
		index++
	}
	//
	for ; index < len(text); index++ {
		c := text[index]
		//
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
			if points > 1 {
				return diag.Invalid("\"%s\" has more than one decimal point", text)
			}
		case c == 'e' || c == 'E':
			if digits == 0 {
				return diag.Invalid("\"%s\" has no digits before exponent", text)
			}
			//
			return validateExponent(text, text[index+1:])
		default:
			return diag.Invalid("\"%s\" contains invalid character '%c'", text, c)
		}
	}
	//
	if digits == 0 {
		return diag.Invalid("\"%s\" contains no digits", text)
	}
	//
	return nil
}

func validateExponent(text string, exp string) error {
	exp = strings.TrimPrefix(strings.TrimPrefix(exp, "+"), "-")
	//
	if exp == "" || strings.Trim(exp, "0123456789") != "" {
		return diag.Invalid("\"%s\" has a malformed exponent", text)
	} else if len(exp) > 6 {
		return diag.Range("\"%s\" has an exponent which is too large", text)
	}
	//
	return nil
}

// Scaled constructs the exact decimal value m * 2^e.  For negative exponents
// this uses the identity 2^-k = 5^k / 10^k, so no rounding ever occurs.
func Scaled(m *big.Int, e int) *apd.Decimal {
	var (
		coeff big.Int
		exp   int
	)
	//
	if e >= 0 {
		coeff.Lsh(m, uint(e))
	} else {
		var five big.Int
		//
		five.Exp(big.NewInt(5), big.NewInt(int64(-e)), nil)
		coeff.Mul(m, &five)
		exp = e
	}
	//
	d, _, err := apd.NewFromString(fmt.Sprintf("%sE%d", coeff.String(), exp))
	if err != nil {
		// unreachable, since the string is constructed above
		panic(err)
	}
	//
	return d
}

// Pow2 constructs the exact decimal value 2^e.
func Pow2(e int) *apd.Decimal {
	return Scaled(big.NewInt(1), e)
}

// Format renders a decimal in plain notation without trailing fractional zeros
// (e.g. "13.625", "-0.5", "1024").
func Format(d *apd.Decimal) string {
	var reduced apd.Decimal
	//
	reduced.Reduce(d)
	//
	text := reduced.Text('f')
	if text == "-0" {
		return "0"
	}
	//
	return text
}

// Split separates a non-negative decimal into its integral part (as an
// integer) and its fractional part.
func Split(d *apd.Decimal) (*big.Int, *apd.Decimal) {
	var (
		integ, frac apd.Decimal
		val         big.Int
	)
	//
	d.Modf(&integ, &frac)
	//
	text := integ.Text('f')
	if _, ok := val.SetString(strings.TrimPrefix(text, "-"), 10); !ok {
		panic(fmt.Sprintf("invalid integral part %s", text))
	}
	//
	if integ.Negative {
		val.Neg(&val)
	}
	//
	frac.Abs(&frac)
	//
	return &val, &frac
}

// Double computes 2*d exactly within the given context.
func Double(ctx *apd.Context, d *apd.Decimal) (*apd.Decimal, error) {
	var result apd.Decimal
	//
	cond, err := ctx.Mul(&result, d, apd.New(2, 0))
	//
	return &result, check(ctx, cond, err)
}

// Add computes x+y within the given context.
func Add(ctx *apd.Context, x *apd.Decimal, y *apd.Decimal) (*apd.Decimal, error) {
	var result apd.Decimal
	//
	cond, err := ctx.Add(&result, x, y)
	//
	return &result, check(ctx, cond, err)
}

// Sub computes x-y within the given context.
func Sub(ctx *apd.Context, x *apd.Decimal, y *apd.Decimal) (*apd.Decimal, error) {
	var result apd.Decimal
	//
	cond, err := ctx.Sub(&result, x, y)
	//
	return &result, check(ctx, cond, err)
}

// Mul computes x*y within the given context.
func Mul(ctx *apd.Context, x *apd.Decimal, y *apd.Decimal) (*apd.Decimal, error) {
	var result apd.Decimal
	//
	cond, err := ctx.Mul(&result, x, y)
	//
	return &result, check(ctx, cond, err)
}

// Every operation here is expected to be exact, hence an inexact result means
// the context precision was insufficient.
func check(ctx *apd.Context, cond apd.Condition, err error) error {
	if err != nil {
		return diag.Internal("decimal arithmetic failed: %s", err.Error())
	} else if cond.Inexact() {
		return diag.Range("result needs more than %d significant digits", ctx.Precision)
	}
	//
	return nil
}
