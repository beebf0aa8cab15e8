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

import "github.com/succinctds/bitrank/internal"

// Rank1 returns the number of set bits in B[0..i). Precondition:
// 0 <= i < n. O(1): one L0 lookup, one L12 lookup (one cache line), a
// prefix of at most three L2 slots, and a popcount of at most 511 tail bits.
func (this *Index) Rank1(i int) int {
	checkRankPrecondition("Index.Rank1", i, this.bv.Len())
	return this.rank1(i)
}

// Rank0 returns the number of cleared bits in B[0..i). rank0(i)+rank1(i)==i
// always holds.
func (this *Index) Rank0(i int) int {
	checkRankPrecondition("Index.Rank0", i, this.bv.Len())
	return i - this.rank1(i)
}

// Rank returns Rank1(i) if b, else Rank0(i).
func (this *Index) Rank(b bool, i int) int {
	if b {
		return this.Rank1(i)
	}

	return this.Rank0(i)
}

func (this *Index) rank1(i int) int {
	g := i / internal.L0
	h := i / internal.L1
	j := (i / internal.L2) % internal.L2PerL1
	r := i % internal.L2

	count := int(this.tbl.l0[g]) + int(this.tbl.l12[h].L1())

	for t := 0; t < j; t++ {
		count += int(this.tbl.l12[h].L2(t))
	}

	tailLo := i - r
	count += this.bv.PopCountRange(tailLo, i)
	return count
}
