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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	bitrank "github.com/succinctds/bitrank"
	"github.com/succinctds/bitrank/bitvector"
	"github.com/succinctds/bitrank/internal"
)

func TestAccessMatchesUnderlyingVector(t *testing.T) {
	bv, err := bitvector.NewFromString("1100110011")
	require.NoError(t, err)
	idx := Build(bv, nil)

	for i := 0; i < bv.Len(); i++ {
		require.Equal(t, bv.Get(i), idx.Access(i))
	}
}

func TestAccessOutOfRangePanics(t *testing.T) {
	bv := bitvector.New(4)
	idx := Build(bv, nil)

	require.Panics(t, func() { idx.Access(4) })
	require.Panics(t, func() { idx.Access(-1) })
}

func TestRankOutOfRangePanics(t *testing.T) {
	bv := bitvector.New(4)
	idx := Build(bv, nil)

	require.Panics(t, func() { idx.Rank1(4) })
	require.PanicsWithValue(t,
		bitrank.PreconditionViolation{Op: "Index.Rank1", Msg: "index out of range"},
		func() { idx.Rank1(4) })
}

func TestSelectZeroOrTooLargePanics(t *testing.T) {
	bv := bitvector.New(4)
	idx := Build(bv, nil)

	require.Panics(t, func() { idx.Select1(0) })
	require.Panics(t, func() { idx.Select1(5) })
}

// TestRankZeroSumInvariant is the universal invariant from spec.md §8:
// rank0(i) + rank1(i) == i for all i in [0, n).
func TestRankZeroSumInvariant(t *testing.T) {
	n := internal.L1*3 + 17
	rng := rand.New(rand.NewSource(11))
	bv := bitvector.New(n)

	for i := 0; i < n; i++ {
		bv.Set(i, rng.Intn(2) == 1)
	}

	idx := Build(bv, nil)

	for i := 0; i < n; i++ {
		require.Equal(t, i, idx.Rank0(i)+idx.Rank1(i), "i=%d", i)
	}
}

// TestRankStepInvariant: rank_b(i+1) - rank_b(i) is 0 or 1, and is 1 iff
// B[i] == b.
func TestRankStepInvariant(t *testing.T) {
	n := internal.L1*2 + 5
	rng := rand.New(rand.NewSource(13))
	bv := bitvector.New(n)

	for i := 0; i < n; i++ {
		bv.Set(i, rng.Intn(2) == 1)
	}

	idx := Build(bv, nil)

	for i := 0; i < n-1; i++ {
		for _, b := range []bool{true, false} {
			step := idx.Rank(b, i+1) - idx.Rank(b, i)
			require.Contains(t, []int{0, 1}, step)

			if bv.Get(i) == b {
				require.Equal(t, 1, step)
			} else {
				require.Equal(t, 0, step)
			}
		}
	}
}

func TestRankAgainstNaiveAcrossBoundarySizes(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	sizes := []int{0, 1, internal.L2, internal.L2 + 1, internal.L1, internal.L1 + 1,
		internal.L1*8192 - 3}

	for _, n := range sizes {
		bv := bitvector.New(n)

		for i := 0; i < n; i++ {
			bv.Set(i, rng.Intn(2) == 1)
		}

		idx := Build(bv, nil)

		for i := 0; i < n; i += max(1, n/500) {
			require.Equal(t, naiveRank1(bv, i), idx.Rank1(i), "n=%d i=%d", n, i)
			require.Equal(t, naiveRank0(bv, i), idx.Rank0(i), "n=%d i=%d", n, i)
		}
	}
}

// TestSingleBitAtEachBoundary covers the "B with a single set bit at
// positions 0, L2-1, L2, L1-1, L1, L0-1, L0" boundary list from spec.md §8.
// Position L0 is covered separately in Select_test.go's
// TestScenarioL0Boundaries (guarded by -short) to avoid duplicating a
// multi-gigabyte allocation here; position L0-1 is not tested.
func TestSingleBitAtEachBoundary(t *testing.T) {
	positions := []int{0, internal.L2 - 1, internal.L2, internal.L1 - 1, internal.L1}
	n := internal.L1 * 3

	for _, pos := range positions {
		bv := bitvector.New(n)
		bv.Set(pos, true)
		idx := Build(bv, nil)

		require.Equal(t, 1, bv.PopCountRange(0, n))
		got, ok := idx.Select1(1)
		require.True(t, ok)
		require.Equal(t, pos, got)
		require.Equal(t, 0, idx.Rank1(pos))
		require.Equal(t, 1, idx.Rank1(pos+1))
	}
}

