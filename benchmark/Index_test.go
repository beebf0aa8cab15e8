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

package benchmark

import (
	"math/rand"
	"testing"

	"github.com/succinctds/bitrank/bitvector"
	"github.com/succinctds/bitrank/internal"
	"github.com/succinctds/bitrank/index"
)

func makeRandomVector(n int, seed int64) *bitvector.BitVector {
	rng := rand.New(rand.NewSource(seed))
	bv := bitvector.New(n)

	for i := 0; i < n; i++ {
		bv.Set(i, rng.Intn(2) == 1)
	}

	return bv
}

func BenchmarkBuild(b *testing.B) {
	bv := makeRandomVector(internal.L1*8192, 1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		index.Build(bv, nil)
	}
}

func BenchmarkRank1(b *testing.B) {
	bv := makeRandomVector(internal.L1*8192, 2)
	idx := index.Build(bv, nil)
	n := bv.Len()
	b.ResetTimer()

	res := 0

	for i := 0; i < b.N; i++ {
		res += idx.Rank1(i % n)
	}

	if res < 0 {
		b.Fatal("unreachable")
	}
}

func BenchmarkSelect1(b *testing.B) {
	bv := makeRandomVector(internal.L1*8192, 3)
	idx := index.Build(bv, nil)
	ones := bv.PopCountRange(0, bv.Len())
	b.ResetTimer()

	found := 0

	for i := 0; i < b.N; i++ {
		if _, ok := idx.Select1(i%ones + 1); ok {
			found++
		}
	}

	if found == 0 {
		b.Fatal("expected at least one match")
	}
}

func BenchmarkAccess(b *testing.B) {
	bv := makeRandomVector(internal.L1*8192, 4)
	idx := index.Build(bv, nil)
	n := bv.Len()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		idx.Access(i % n)
	}
}
