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
package radix

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/exact"
)

// Term is the contribution of a single set bit to a decimal value.
type Term struct {
	Power int    `json:"power"`
	Value string `json:"value"`
}

// DecimalResult is the outcome of converting a binary value into decimal.
type DecimalResult struct {
	Negative bool        `json:"negative"`
	Value    string      `json:"value"`
	Terms    []Term      `json:"terms"`
	Trace    trace.Trace `json:"trace"`
}

// BinaryToDecimal converts a signed binary string with an optional binary point
// (e.g. "-1101.101") into an exact decimal.  Each integer bit contributes
// 2^position counting leftwards from the point, and each fractional bit
// contributes 2^-position counting rightwards.  The sign is applied last.
func BinaryToDecimal(text string, ctx *apd.Context) (DecimalResult, error) {
	var (
		rec = trace.NewRecorder()
		res DecimalResult
	)
	//
	integer, fraction, negative, err := splitBinary(text)
	if err != nil {
		return res, err
	}
	//
	sum := apd.New(0, 0)
	rec.Section("Positional expansion")
	//
	for i, c := range integer + fraction {
		if c != '1' {
			continue
		}
		//
		power := len(integer) - 1 - i
		term := exact.Pow2(power)
		//
		if sum, err = exact.Add(ctx, sum, term); err != nil {
			return res, err
		}
		//
		res.Terms = append(res.Terms, Term{power, exact.Format(term)})
		rec.Step("bit %s: 2^%d = %s", position(i, len(integer)), power, exact.Format(term))
	}
	//
	if negative && !sum.IsZero() {
		res.Negative = true
		sum.Neg(sum)
		rec.Step("apply sign: -1 x %s", exact.Format(new(apd.Decimal).Neg(sum)))
	}
	//
	res.Value = exact.Format(sum)
	rec.Section("Result")
	rec.Step("%s = %s", text, res.Value)
	res.Trace = rec.Trace()
	//
	return res, nil
}

// Name a bit by its position relative to the binary point.
func position(index int, split int) string {
	if index < split {
		return fmt.Sprintf("%d left of point", split-index)
	}
	//
	return fmt.Sprintf("%d right of point", index-split+1)
}

// Split a signed binary string around its (optional) binary point.
func splitBinary(text string) (string, string, bool, error) {
	var (
		clean    = bits.Clean(text)
		negative = strings.HasPrefix(clean, "-")
	)
	//
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "-"), "+")
	parts := strings.Split(clean, ".")
	//
	if len(parts) > 2 {
		return "", "", false, diag.Invalid("\"%s\" has more than one binary point", text)
	} else if len(parts) == 1 {
		parts = append(parts, "")
	}
	//
	if parts[0] == "" && parts[1] == "" {
		return "", "", false, diag.Invalid("binary input has no digits")
	}
	//
	for _, p := range parts {
		if p != "" && !bits.IsBinary(p) {
			return "", "", false, diag.Invalid("\"%s\" contains non-binary digits", text)
		}
	}
	//
	return parts[0], parts[1], negative, nil
}
