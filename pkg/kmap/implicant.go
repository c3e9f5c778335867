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
	"fmt"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Rect is a (possibly wrapping) rectangle of cells on a map.
type Rect struct {
	Row    uint `json:"row"`
	Col    uint `json:"col"`
	Height uint `json:"height"`
	Width  uint `json:"width"`
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d at (%d,%d)", r.Height, r.Width, r.Row, r.Col)
}

// Implicant is a product term covering a set of minterms.
type Implicant struct {
	Minterms  []uint `json:"minterms"`
	Term      string `json:"term"`
	Rect      Rect   `json:"rect"`
	Essential bool   `json:"essential"`
	set       *bitset.BitSet
}

// Covers checks whether this implicant covers a given minterm.
func (p *Implicant) Covers(minterm uint) bool {
	return p.set.Test(minterm)
}

// Enumerate every rectangle of power-of-two dimensions whose cells are all
// ones or don't-cares, and which covers at least one one.  Rectangles are
// visited largest first and the first rectangle found for any given set of
// minterms is retained.  A rectangle which wraps across a three variable axis
// need not form a subcube (e.g. columns 001, 011, 010, 110) and is rejected.
func rectangles(table *Table) []Implicant {
	var (
		layout     = LayoutFor(uint(len(table.Order)))
		rows, cols = layout.Rows(), layout.Cols()
		allowed    = table.Ones.Union(table.DontCares)
		found      []Implicant
	)
	//
	for area := rows * cols; area >= 1; area /= 2 {
		for h := rows; h >= 1; h /= 2 {
			w := area / h
			//
			if w == 0 || w > cols || h*w != area {
				continue
			}
			//
			for r0 := uint(0); r0 < rows; r0++ {
				for c0 := uint(0); c0 < cols; c0++ {
					rect := Rect{r0, c0, h, w}
					set := cover(layout, rect)
					//
					if !allowed.IsSuperSet(set) || set.IntersectionCardinality(table.Ones) == 0 {
						continue
					} else if !isSubcube(set) || seen(found, set) {
						continue
					}
					//
					found = append(found, Implicant{Rect: rect, set: set})
				}
			}
		}
	}
	//
	return found
}

// Determine the minterms covered by a rectangle.
func cover(layout Layout, rect Rect) *bitset.BitSet {
	set := bitset.New(layout.Rows() * layout.Cols())
	//
	for i := uint(0); i < rect.Height; i++ {
		for j := uint(0); j < rect.Width; j++ {
			set.Set(layout.Minterm((rect.Row+i)%layout.Rows(), (rect.Col+j)%layout.Cols()))
		}
	}
	//
	return set
}

// A set of minterms is a subcube when it contains exactly those minterms
// obtained by varying the bits on which its members disagree.
func isSubcube(set *bitset.BitSet) bool {
	and, or := masks(set)
	//
	return set.Count() == 1<<bits.OnesCount(and^or)
}

func masks(set *bitset.BitSet) (uint, uint) {
	var and, or = ^uint(0), uint(0)
	//
	for m, ok := set.NextSet(0); ok; m, ok = set.NextSet(m + 1) {
		and &= m
		or |= m
	}
	//
	return and, or
}

func seen(found []Implicant, set *bitset.BitSet) bool {
	for _, p := range found {
		if p.set.Equal(set) {
			return true
		}
	}
	//
	return false
}

// PrimeImplicants returns the valid rectangles of a map which are not strictly
// contained within another valid rectangle.
func PrimeImplicants(table *Table) []Implicant {
	var (
		candidates = rectangles(table)
		primes     []Implicant
	)
	//
	for i, p := range candidates {
		prime := true
		//
		for j, q := range candidates {
			if i != j && q.set.IsStrictSuperSet(p.set) {
				prime = false
				break
			}
		}
		//
		if prime {
			p.Minterms = members(p.set)
			p.Term = Term(p.set, table.Order)
			primes = append(primes, p)
		}
	}
	//
	return primes
}

// Select a cover of the ones of a map from its prime implicants.  First, any
// implicant which is the only cover for some one is selected (in order of
// minterm).  Then, the implicant covering the most uncovered ones is selected
// until none remain.
func selectCover(table *Table, primes []Implicant) []Implicant {
	var (
		chosen   = make([]bool, len(primes))
		covered  = bitset.New(table.Size())
		selected []Implicant
	)
	//
	choose := func(i int, essential bool) {
		chosen[i] = true
		covered.InPlaceUnion(primes[i].set)
		primes[i].Essential = essential
		selected = append(selected, primes[i])
	}
	//
	for m, ok := table.Ones.NextSet(0); ok; m, ok = table.Ones.NextSet(m + 1) {
		var count, last = 0, 0
		//
		for i := range primes {
			if primes[i].Covers(m) {
				count++
				last = i
			}
		}
		//
		if count == 1 && !chosen[last] {
			choose(last, true)
		}
	}
	//
	for !covered.IsSuperSet(table.Ones) {
		var (
			uncovered = table.Ones.Difference(covered)
			best      = -1
			gain      uint
		)
		//
		for i := range primes {
			if n := primes[i].set.IntersectionCardinality(uncovered); !chosen[i] && n > gain {
				best, gain = i, n
			}
		}
		// every one lies in at least one prime
		if best < 0 {
			break
		}
		//
		choose(best, false)
	}
	//
	return selected
}

// Term returns the product term for a set of minterms over a variable order.
// A variable is complemented when it is 0 throughout the set, uncomplemented
// when it is 1 throughout, and omitted otherwise.
func Term(set *bitset.BitSet, order string) string {
	var (
		and, or = masks(set)
		n       = len(order)
		factors []string
	)
	//
	for i := 0; i < n; i++ {
		bit := uint(1) << (n - 1 - i)
		//
		switch {
		case and&bit != 0:
			factors = append(factors, order[i:i+1])
		case or&bit == 0:
			factors = append(factors, order[i:i+1]+"'")
		}
	}
	//
	if len(factors) == 0 {
		return "1"
	}
	//
	return strings.Join(factors, "·")
}

func members(set *bitset.BitSet) []uint {
	var ms []uint
	//
	for m, ok := set.NextSet(0); ok; m, ok = set.NextSet(m + 1) {
		ms = append(ms, m)
	}
	//
	return ms
}
