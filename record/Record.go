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

// Package record implements the InterleavedRecord: a single 64-bit word
// holding one L1 counter and up to three L2 counters for one super-block,
// so that one cache line answers a rank query. The bit layout is fixed and
// observable (spec §6): bits [0,32) hold L1, and each following 10-bit field
// holds one L2 counter.
package record

import (
	"fmt"

	bitrank "github.com/succinctds/bitrank"
	"github.com/succinctds/bitrank/internal"
)

// InvalidArgumentError reports a value that cannot be packed into a Record:
// an L2 counter wider than W2 bits, or more than three L2 counters.
type InvalidArgumentError struct {
	Msg string
}

func (this InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid record argument: %s", this.Msg)
}

// Record is one packed InterleavedRecord: an L1 counter plus up to three L2
// counters for the super-block it describes. len tracks how many of the
// three L2 slots were actually supplied by the builder (it is 3 for every
// super-block except possibly the last one in the table); it is bookkeeping
// alongside the packed word, not part of the persisted 64-bit layout.
type Record struct {
	word uint64
	len  uint8
}

// New packs an L1 counter and up to three L2 counters into a Record.
func New(l1 uint32, l2s []uint16) (Record, error) {
	if len(l2s) > 3 {
		return Record{}, InvalidArgumentError{Msg: "more than three L2 counters supplied"}
	}

	word := uint64(l1)

	for i, c := range l2s {
		if c > internal.MaxL2Count {
			return Record{}, InvalidArgumentError{Msg: fmt.Sprintf("L2 counter %d (%d) exceeds %d", i, c, internal.MaxL2Count)}
		}

		word |= uint64(c) << uint(internal.W1+i*internal.W2)
	}

	return Record{word: word, len: uint8(len(l2s))}, nil
}

// L1 returns the packed L1 counter: the number of set bits from the start
// of the enclosing L0 group up to the start of this super-block.
func (this Record) L1() uint32 {
	return uint32(this.word & ((uint64(1) << internal.W1) - 1))
}

// L2 returns the j-th packed L2 counter, 0 <= j < Len().
func (this Record) L2(j int) uint16 {
	if j < 0 || j >= int(this.len) {
		panic(bitrank.PreconditionViolation{Op: "Record.L2", Msg: "slot index out of range"})
	}

	shift := uint(internal.W1 + j*internal.W2)
	return uint16((this.word >> shift) & ((uint64(1) << internal.W2) - 1))
}

// Len returns the number of valid L2 slots in {0,1,2,3}. It is 3 for every
// super-block fully contained in B; only the last super-block in a table
// may have fewer when the vector's length is not a multiple of L1.
func (this Record) Len() int {
	return int(this.len)
}

// Word returns the raw 64-bit packed word, per the observable layout in
// spec §6 (little-endian on the wire if ever persisted).
func (this Record) Word() uint64 {
	return this.word
}
