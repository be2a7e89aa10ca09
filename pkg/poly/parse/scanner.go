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
package parse

// Scanner is a function which accepts some number of characters from the front
// of its input, returning how many were accepted.  A scanner which accepts
// nothing returns zero.
type Scanner func(items []rune) uint

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Scanners are tried from left to right, and the
// first to succeed wins.
func Or(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of characters, one after the other.
func Unit(chars ...rune) Scanner {
	return func(items []rune) uint {
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

// String accepts a given string.
func String(s string) Scanner {
	return Unit([]rune(s)...)
}

// Within accepts any character within a given (inclusive) range.
func Within(lowest rune, highest rune) Scanner {
	return func(items []rune) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches one or more of a given item.
func Many(acceptor Scanner) Scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := acceptor(items[index:])
			//
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

// Until matches everything up to (but not including) a given character, or
// the end of the input.
func Until(item rune) Scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) && items[index] != item {
			index++
		}
		//
		return index
	}
}

// Sequence matches all the scanners in order, where each scanner consumes the
// input immediately after the previous one ends.
func Sequence(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		n := uint(0)
		//
		for _, scanner := range scanners {
			m := scanner(items[n:])
			//
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// Eof matches the end of the input stream.
func Eof() Scanner {
	return func(items []rune) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}
