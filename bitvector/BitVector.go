/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bitvector holds the raw, immutable bit sequence B that the
// succinct index is built over. It is the "bit storage" leaf of the design:
// it knows nothing about L0/L1/L2 blocks, only how to read one bit and how
// to popcount an arbitrary range.
package bitvector

import (
	"fmt"
	"math/bits"

	bitrank "github.com/succinctds/bitrank"
)

// BitVector is a read-only sequence of n bits packed 64 to a word.
type BitVector struct {
	words []uint64
	n     int
}

// New creates a BitVector of length n with every bit cleared.
func New(n int) *BitVector {
	if n < 0 {
		panic(bitrank.PreconditionViolation{Op: "bitvector.New", Msg: "negative length"})
	}

	return &BitVector{words: make([]uint64, (n+63)/64), n: n}
}

// NewFromString builds a BitVector from a string of '0'/'1' characters, one
// bit per character, in order. Any other character is a caller error.
func NewFromString(s string) (*BitVector, error) {
	bv := New(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			bv.Set(i, true)
		case '0':
			// already clear
		default:
			return nil, &FormatError{Pos: i, Char: s[i]}
		}
	}

	return bv, nil
}

// FormatError reports a non '0'/'1' character found while parsing a bit
// string.
type FormatError struct {
	Pos  int
	Char byte
}

func (this *FormatError) Error() string {
	return fmt.Sprintf("invalid bit character %q at position %d", rune(this.Char), this.Pos)
}

// Len returns the number of bits n.
func (this *BitVector) Len() int {
	return this.n
}

// Set sets or clears the bit at position i. Only used while constructing B;
// the index treats the vector as immutable once built.
func (this *BitVector) Set(i int, v bool) {
	if i < 0 || i >= this.n {
		panic(bitrank.PreconditionViolation{Op: "BitVector.Set", Msg: "index out of range"})
	}

	if v {
		this.words[i>>6] |= uint64(1) << uint(i&63)
	} else {
		this.words[i>>6] &^= uint64(1) << uint(i&63)
	}
}

// Get returns the bit at position i.
func (this *BitVector) Get(i int) bool {
	if i < 0 || i >= this.n {
		panic(bitrank.PreconditionViolation{Op: "BitVector.Get", Msg: "index out of range"})
	}

	return (this.words[i>>6]>>uint(i&63))&1 != 0
}

// Word returns the raw 64-bit word holding bits [64*i, 64*i+64). The high
// bits of the final word, past n, are always zero.
func (this *BitVector) Word(i int) uint64 {
	return this.words[i]
}

// NumWords returns the number of 64-bit words backing the vector.
func (this *BitVector) NumWords() int {
	return len(this.words)
}

// PopCountRange returns the number of set bits in [lo, hi).
func (this *BitVector) PopCountRange(lo, hi int) int {
	if lo < 0 || hi > this.n || lo > hi {
		panic(bitrank.PreconditionViolation{Op: "BitVector.PopCountRange", Msg: "invalid range"})
	}

	if lo == hi {
		return 0
	}

	wLo, wHi := lo>>6, (hi-1)>>6
	lastBit := hi & 63

	if lastBit == 0 {
		lastBit = 64
	}

	if wLo == wHi {
		return bits.OnesCount64(this.words[wLo] & rangeMask(lo&63, lastBit))
	}

	count := bits.OnesCount64(this.words[wLo] & rangeMask(lo&63, 64))

	for w := wLo + 1; w < wHi; w++ {
		count += bits.OnesCount64(this.words[w])
	}

	count += bits.OnesCount64(this.words[wHi] & rangeMask(0, lastBit))
	return count
}

// rangeMask returns a mask with bits [lo, hi) set, 0 <= lo <= hi <= 64.
func rangeMask(lo, hi int) uint64 {
	if hi == 64 {
		if lo == 0 {
			return ^uint64(0)
		}

		return ^uint64(0) << uint(lo)
	}

	return (uint64(1)<<uint(hi) - 1) &^ (uint64(1)<<uint(lo) - 1)
}
