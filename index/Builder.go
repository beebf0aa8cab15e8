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

package index

import (
	"time"

	bitrank "github.com/succinctds/bitrank"
	"github.com/succinctds/bitrank/internal"
	"github.com/succinctds/bitrank/record"
)

// Build runs the single forward pass described in spec §4.2 over bv and
// returns the fully valid Index. listener may be nil; when non-nil it is
// notified of build-start, every L12 record and L0 entry appended inside
// the forward pass, and build-end, so a caller can report progress on a
// large vector without the core needing to know anything about how that
// progress is displayed. The trailing partial-super-block record and the
// trailing L0 entry appended after the pass are not reported.
//
// The pass steps over bv in 512-bit (L2) chunks. Any chunks already
// consumed into a full super-block are folded into the running L1
// accumulator and cleared; any full L0 group of super-blocks folds its
// running total into l0Acc before it is reset. Both appends happen before
// the corresponding accumulator update, which is what keeps L0[g] equal to
// popcount(B[0..g*L0)) rather than popcount(B[0..(g+1)*L0)).
func Build(bv bitrank.Vector, listener bitrank.Listener) *Index {
	n := bv.Len()
	emit(listener, bitrank.EVT_BUILD_START, -1, 0)

	l0 := internal.NewWordBuffer(n/internal.L0 + 1)
	l12 := make([]record.Record, 0, n/internal.L1+1)

	var l0Acc uint64
	var l1 uint32
	var l2s [4]uint16

	numFullChunks := n / internal.L2

	for i := 0; i < numFullChunks; i++ {
		lo := i * internal.L2
		c := bv.PopCountRange(lo, lo+internal.L2)
		l2s[i%internal.L2PerL1] = uint16(c)

		if i%internal.L2PerL1 == internal.L2PerL1-1 {
			rec, err := record.New(l1, l2s[:internal.L2PerL1-1])

			if err != nil {
				panic(err)
			}

			l12 = append(l12, rec)
			l1 += uint32(l2s[0]) + uint32(l2s[1]) + uint32(l2s[2]) + uint32(l2s[3])
			l2s = [4]uint16{}
			emit(listener, bitrank.EVT_L12_BLOCK_FLUSHED, len(l12)-1, int64(lo+internal.L2))
		}

		if (i+1)%internal.L2PerL0 == 0 {
			l0.Append(l0Acc)
			l0Acc += uint64(l1)
			l1 = 0
			emit(listener, bitrank.EVT_L0_GROUP_FLUSHED, l0.Len()-1, int64(lo+internal.L2))
		}
	}

	if n%internal.L1 != 0 {
		k := numFullChunks % internal.L2PerL1
		rec, err := record.New(l1, l2s[:k])

		if err != nil {
			panic(err)
		}

		l12 = append(l12, rec)
	}

	if n%internal.L0 != 0 {
		l0.Append(l0Acc)
	}

	if l0.Len() == 0 {
		l0.Append(0)
	}

	emit(listener, bitrank.EVT_BUILD_END, -1, int64(n))

	return &Index{bv: bv, tbl: tables{l0: l0.Words(), l12: l12}}
}

func emit(listener bitrank.Listener, evtType, id int, size int64) {
	if listener == nil {
		return
	}

	listener.ProcessEvent(bitrank.NewEvent(evtType, id, size, time.Time{}))
}
