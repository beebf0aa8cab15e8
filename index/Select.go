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

// Select1 returns the position of the k-th (1-based) set bit, or (0, false)
// if B has fewer than k set bits. Precondition: 1 <= k <= n.
func (this *Index) Select1(k int) (int, bool) {
	checkSelectPrecondition("Index.Select1", k, this.bv.Len())
	return this.selectBit(true, k)
}

// Select0 returns the position of the k-th (1-based) cleared bit, or
// (0, false) if B has fewer than k cleared bits. Precondition: 1 <= k <= n.
func (this *Index) Select0(k int) (int, bool) {
	checkSelectPrecondition("Index.Select0", k, this.bv.Len())
	return this.selectBit(false, k)
}

// Select returns Select1(k) if b, else Select0(k).
func (this *Index) Select(b bool, k int) (int, bool) {
	if b {
		return this.Select1(k)
	}

	return this.Select0(k)
}

// selectBit implements §4.4 for both bit values: a binary search over L0,
// a clamped binary search over the L1 counters of the chosen L0 group, a
// 3-step linear scan over the L2 slots of the chosen super-block, and a
// final linear bit scan. b selects whether "count" below means a count of
// ones (the stored quantities) or a count of zeros (span size minus the
// stored quantity).
func (this *Index) selectBit(b bool, k int) (int, bool) {
	n := this.bv.Len()

	// Step 1: scan L0. The largest g with count(g) < k always exists
	// because count(0) == 0 < k (k >= 1 by precondition).
	countL0 := func(g int) int {
		if b {
			return int(this.tbl.l0[g])
		}

		return g*internal.L0 - int(this.tbl.l0[g])
	}

	g := bsearchLast(0, this.tbl.numL0()-1, func(g int) bool { return countL0(g) < k })
	k -= countL0(g)

	// Step 2: binary search L1 within group g. The window's first index
	// always has relative count 0 (the builder resets l1 at every L0
	// group boundary), which is what keeps this search from underflowing
	// regardless of how skewed the bit distribution is (spec §9 open
	// question).
	hStart := g * internal.L1PerL0
	hEnd := hStart + internal.L1PerL0

	if this.tbl.numL12() < hEnd {
		hEnd = this.tbl.numL12()
	}

	hEnd--

	if hEnd < hStart {
		hEnd = hStart
	}

	countL1 := func(h int) int {
		rec := this.tbl.l12[h]

		if b {
			return int(rec.L1())
		}

		local := h - hStart
		return local*internal.L1 - int(rec.L1())
	}

	h := bsearchLast(hStart, hEnd, func(h int) bool { return countL1(h) < k })
	k -= countL1(h)

	// Step 3: linear scan over at most three stored L2 slots.
	rec := this.tbl.l12[h]
	t := 0

	for t < 3 && t < rec.Len() {
		var c int

		if b {
			c = int(rec.L2(t))
		} else {
			c = internal.L2 - int(rec.L2(t))
		}

		if k > c {
			k -= c
			t++
		} else {
			break
		}
	}

	// Step 4: linear bit scan, starting at the chosen L2 block (which may
	// be the implicit fourth block, or past the end of a partial trailing
	// super-block — in either case the scan below simply runs out of bits
	// and reports "not found").
	start := h*internal.L1 + t*internal.L2

	for pos := start; pos < n; pos++ {
		if this.bv.Get(pos) == b {
			k--

			if k == 0 {
				return pos, true
			}
		}
	}

	return 0, false
}

// bsearchLast returns the largest idx in [lo, hi] for which pred(idx) is
// true, given pred is true on a prefix of the range and false afterward.
// Callers are responsible for ensuring pred(lo) holds; bsearchLast does not
// re-check it, matching the boundary-arithmetic contract in spec §4.4.
func bsearchLast(lo, hi int, pred func(int) bool) int {
	for lo < hi {
		mid := lo + (hi-lo+1)/2

		if pred(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}
