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

// Step records a single subtraction (i.e. XOR) of the divisor during long
// division.
type Step struct {
	// Offset of the divisor within the dividend.
	Offset uint
	// Window of the working buffer before the XOR.
	Before string
	// Window of the working buffer after the XOR.
	After string
}

// Division is the outcome of dividing one polynomial by another over GF(2).
type Division struct {
	Dividend  string
	Divisor   string
	Quotient  string
	Remainder string
	Steps     []Step
}

// Divide performs long division of a dividend by a divisor whose leading bit
// is 1.  The divisor is slid over exactly len(dividend)-len(divisor)+1
// positions, and XORed in wherever the leading bit of the current window is
// set.  The remainder has exactly len(divisor)-1 bits.
func Divide(dividend string, divisor string) Division {
	var (
		width    = len(divisor)
		buffer   = []byte(dividend)
		quotient strings.Builder
		steps    []Step
	)
	//
	if width == 0 || divisor[0] != '1' {
		panic("divisor must have a leading one")
	} else if len(dividend) < width {
		panic("dividend shorter than divisor")
	}
	//
	for i := 0; i+width <= len(buffer); i++ {
		if buffer[i] != '1' {
			quotient.WriteByte('0')
			continue
		}
		//
		before := string(buffer[i : i+width])
		//
		for j := 0; j < width; j++ {
			buffer[i+j] = '0' + ((buffer[i+j] - '0') ^ (divisor[j] - '0'))
		}
		//
		quotient.WriteByte('1')
		steps = append(steps, Step{uint(i), before, string(buffer[i : i+width])})
	}
	//
	return Division{
		Dividend:  dividend,
		Divisor:   divisor,
		Quotient:  quotient.String(),
		Remainder: string(buffer[len(buffer)-width+1:]),
		Steps:     steps,
	}
}

// IsZero checks whether the remainder of this division is zero.
func (p *Division) IsZero() bool {
	return !strings.Contains(p.Remainder, "1")
}

// Layout renders this division in the style of a hand-worked long division,
// with each XOR aligned beneath the dividend.
func (p *Division) Layout() []string {
	var lines = []string{p.Dividend}
	//
	for _, s := range p.Steps {
		pad := strings.Repeat(" ", int(s.Offset))
		lines = append(lines, pad+p.Divisor)
		lines = append(lines, pad+strings.Repeat("-", len(p.Divisor)))
		lines = append(lines, pad+s.After)
	}
	//
	pad := strings.Repeat(" ", len(p.Dividend)-len(p.Remainder))
	lines = append(lines, fmt.Sprintf("%s%s  (remainder)", pad, p.Remainder))
	//
	return lines
}
