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

import (
	"cmp"
	"slices"
)

// Scanner determines how many leading items of a sequence it accepts, where 0
// signals no match.
type Scanner[T any] func(items []T) uint

// Or accepts whatever the first matching scanner accepts, trying each scanner
// in the order given.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// OneOf accepts a single item from a given set.
func OneOf[T comparable](options ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) > 0 && slices.Contains(options, items[0]) {
			return 1
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of items, in order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// Within accepts any single item in the (inclusive) range lowest..highest.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many greedily applies a scanner zero or more times, returning the total
// number of items accepted.
func Many[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := scanner(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// Some greedily applies a scanner one or more times.
func Some[T any](scanner Scanner[T]) Scanner[T] {
	many := Many(scanner)
	//
	return func(items []T) uint {
		if scanner(items) == 0 {
			return 0
		}
		//
		return many(items)
	}
}

// Eof matches only at the end of input.  Since a match must be non-empty, it
// claims a notional single item which the lexer clips to the input.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}
