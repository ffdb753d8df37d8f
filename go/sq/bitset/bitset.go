/*
Copyright 2026 The Squall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bitset implements an immutable set of small non-negative integers.
//
// A Bitset is a string under the hood, so it can be compared with == and used
// as a map key. All operations return new values; trailing zero bytes are
// always trimmed so that equal sets have equal representations.
package bitset

import (
	"math/bits"
)

// A Bitset is an immutable collection of bits.
type Bitset string

const wordWidth = 8

func wordsFor(bit int) int {
	return bit/wordWidth + 1
}

// trim drops trailing zero words and freezes the slice into a Bitset.
func trim(words []byte) Bitset {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	return Bitset(words[:n])
}

// Single returns a Bitset with only the given bit set.
func Single(bit int) Bitset {
	words := make([]byte, wordsFor(bit))
	words[bit/wordWidth] = 1 << (bit % wordWidth)
	return Bitset(words)
}

// Build returns a Bitset with all the given bits set.
func Build(bits ...int) Bitset {
	var bs Bitset
	for _, b := range bits {
		bs = bs.Set(b)
	}
	return bs
}

// Set returns a copy of bs with the bit at offset set.
func (bs Bitset) Set(offset int) Bitset {
	size := max(len(bs), wordsFor(offset))
	words := make([]byte, size)
	copy(words, bs)
	words[offset/wordWidth] |= 1 << (offset % wordWidth)
	return Bitset(words)
}

// IsSet reports whether the bit at offset is set.
func (bs Bitset) IsSet(offset int) bool {
	w := offset / wordWidth
	if w >= len(bs) {
		return false
	}
	return bs[w]&(1<<(offset%wordWidth)) != 0
}

// Or returns the union of the two Bitsets.
func (bs Bitset) Or(b2 Bitset) Bitset {
	if len(bs) == 0 {
		return b2
	}
	if len(b2) == 0 {
		return bs
	}
	small, large := bs, b2
	if len(small) > len(large) {
		small, large = large, small
	}
	words := []byte(large)
	for i := 0; i < len(small); i++ {
		words[i] |= small[i]
	}
	return Bitset(words)
}

// And returns the intersection of the two Bitsets.
func (bs Bitset) And(b2 Bitset) Bitset {
	n := min(len(bs), len(b2))
	words := make([]byte, n)
	for i := 0; i < n; i++ {
		words[i] = bs[i] & b2[i]
	}
	return trim(words)
}

// AndNot returns the bits of bs that are not set in b2.
func (bs Bitset) AndNot(b2 Bitset) Bitset {
	if len(b2) == 0 {
		return bs
	}
	words := []byte(bs)
	for i := 0; i < len(words) && i < len(b2); i++ {
		words[i] &^= b2[i]
	}
	return trim(words)
}

// Overlaps reports whether the two Bitsets have any bit in common.
func (bs Bitset) Overlaps(b2 Bitset) bool {
	n := min(len(bs), len(b2))
	for i := 0; i < n; i++ {
		if bs[i]&b2[i] != 0 {
			return true
		}
	}
	return false
}

// IsContainedBy reports whether every bit of bs is also set in b2.
func (bs Bitset) IsContainedBy(b2 Bitset) bool {
	if len(bs) > len(b2) {
		return false
	}
	for i := 0; i < len(bs); i++ {
		if bs[i]&b2[i] != bs[i] {
			return false
		}
	}
	return true
}

// Popcount returns the number of bits set.
func (bs Bitset) Popcount() (count int) {
	for i := 0; i < len(bs); i++ {
		count += bits.OnesCount8(bs[i])
	}
	return
}

// ForEach calls yield with the position of each set bit, in increasing order.
func (bs Bitset) ForEach(yield func(int)) {
	// From Lemire, "Iterating over set bits quickly"
	for i := 0; i < len(bs); i++ {
		word := bs[i]
		for word != 0 {
			t := word & -word
			yield(i*wordWidth + bits.TrailingZeros8(word))
			word ^= t
		}
	}
}

// SingleBit returns the position of the only set bit, or -1 if bs is empty
// or has more than one bit set.
func (bs Bitset) SingleBit() int {
	if bs.Popcount() != 1 {
		return -1
	}
	offset := -1
	bs.ForEach(func(b int) { offset = b })
	return offset
}
