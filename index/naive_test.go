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

import "github.com/succinctds/bitrank/bitvector"

// naiveRank1 answers rank1(i) by a direct popcount over [0, i), with no
// auxiliary structure at all. This is the reference oracle named in spec §8
// and supplemented from original_source/naive_vector.rs's NaiveVector: a
// correctness baseline with none of the Index package's bit-packing to get
// wrong, used only from tests.
func naiveRank1(bv *bitvector.BitVector, i int) int {
	return bv.PopCountRange(0, i)
}

func naiveRank0(bv *bitvector.BitVector, i int) int {
	return i - naiveRank1(bv, i)
}

// naiveSelect1 answers select1(k) (1-based) by scanning forward bit by bit,
// mirroring NaiveVector::select1's linear fallback without its block-index
// fast path.
func naiveSelect1(bv *bitvector.BitVector, k int) (int, bool) {
	return naiveSelect(bv, true, k)
}

func naiveSelect0(bv *bitvector.BitVector, k int) (int, bool) {
	return naiveSelect(bv, false, k)
}

func naiveSelect(bv *bitvector.BitVector, b bool, k int) (int, bool) {
	for i := 0; i < bv.Len(); i++ {
		if bv.Get(i) == b {
			k--

			if k == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
