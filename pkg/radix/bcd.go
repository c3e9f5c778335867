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
	"math/big"
	"strings"

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// EncodeBCD encodes the magnitude of a value in packed BCD, four bits per
// decimal digit, grouped by digit.  Negative values (and negative zero, when
// flagged) carry a leading '-'.
func EncodeBCD(val *big.Int, negZero bool) string {
	var (
		digits = new(big.Int).Abs(val).String()
		groups = make([]string, len(digits))
		sign   string
	)
	//
	for i, d := range digits {
		groups[i] = bits.FromUint(uint64(d-'0'), 4)
	}
	//
	if val.Sign() < 0 || (val.Sign() == 0 && negZero) {
		sign = "-"
	}
	//
	return sign + strings.Join(groups, " ")
}

// DecodeBCD decodes packed BCD (with an optional sign).  The number of bits
// must be a multiple of four, and every nibble must be a decimal digit.  A
// negative sign on a zero value is reported as negative zero.
func DecodeBCD(text string) (*big.Int, bool, error) {
	var (
		clean    = bits.Clean(text)
		negative = strings.HasPrefix(clean, "-")
	)
	//
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "-"), "+")
	//
	if err := bits.Validate(clean, "BCD input"); err != nil {
		return nil, false, err
	} else if len(clean)%4 != 0 {
		return nil, false, diag.Invalid("BCD input must be a whole number of 4-bit groups (got %d bits)", len(clean))
	}
	//
	digits, err := BCDDigits(clean)
	if err != nil {
		return nil, false, err
	}
	//
	val, _ := new(big.Int).SetString(digits, 10)
	//
	if negative && val.Sign() == 0 {
		return val, true, nil
	} else if negative {
		val.Neg(val)
	}
	//
	return val, false, nil
}

// BCDDigits converts a string of whole nibbles into decimal digits, failing
// on any nibble above 1001.
func BCDDigits(nibbles string) (string, error) {
	var builder strings.Builder
	//
	for i := 0; i+4 <= len(nibbles); i += 4 {
		digit := bits.ToUint(nibbles[i : i+4])
		if digit > 9 {
			return "", diag.Invalid("nibble %s is not a BCD digit", nibbles[i:i+4])
		}
		//
		builder.WriteByte(byte('0' + digit))
	}
	//
	return builder.String(), nil
}
