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

import bitrank "github.com/succinctds/bitrank"

// Index is the succinct rank/select index: a borrowed bitrank.Vector plus
// the L0/L12 auxiliary tables built over it. It is immutable once returned
// by Build, and every query method is a pure read — safe to call from many
// goroutines at once without synchronization (spec §5).
type Index struct {
	bv  bitrank.Vector
	tbl tables
}

// Len returns n, the length of the underlying bit sequence.
func (this *Index) Len() int {
	return this.bv.Len()
}

// Access returns B[i]. Panics with bitrank.PreconditionViolation if i is
// out of range.
func (this *Index) Access(i int) bool {
	if i < 0 || i >= this.bv.Len() {
		panic(bitrank.PreconditionViolation{Op: "Index.Access", Msg: "index out of range"})
	}

	return this.bv.Get(i)
}

func checkRankPrecondition(op string, i, n int) {
	if i < 0 || i >= n {
		panic(bitrank.PreconditionViolation{Op: op, Msg: "index out of range"})
	}
}

func checkSelectPrecondition(op string, k, n int) {
	if k < 1 || k > n {
		panic(bitrank.PreconditionViolation{Op: op, Msg: "rank out of range"})
	}
}
