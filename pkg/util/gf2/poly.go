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
package gf2

import (
	"fmt"
	"strings"
)

// Degree returns the degree of the polynomial described by a bit string (MSB
// is the highest power), or -1 for the zero polynomial.
func Degree(bits string) int {
	index := strings.IndexByte(bits, '1')
	if index < 0 {
		return -1
	}
	//
	return len(bits) - 1 - index
}

// Terms returns the powers of x present in a polynomial, highest first.
func Terms(bits string) []uint {
	var terms []uint
	//
	for i, c := range bits {
		if c == '1' {
			terms = append(terms, uint(len(bits)-1-i))
		}
	}
	//
	return terms
}

// Format renders a polynomial in conventional notation, e.g. "x^4 + x + 1".
func Format(bits string) string {
	var parts []string
	//
	for _, t := range Terms(bits) {
		switch t {
		case 0:
			parts = append(parts, "1")
		case 1:
			parts = append(parts, "x")
		default:
			parts = append(parts, fmt.Sprintf("x^%d", t))
		}
	}
	//
	if len(parts) == 0 {
		return "0"
	}
	//
	return strings.Join(parts, " + ")
}
