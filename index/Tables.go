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

// Package index holds the two-level auxiliary tables built over a
// bitvector.BitVector, the single-pass builder that fills them, and the
// rank/select engines and query dispatcher that read them.
package index

import "github.com/succinctds/bitrank/record"

// tables is the pair of dense arrays described in spec §3: L0 (one 64-bit
// prefix-popcount per 2^32-bit group) and L12 (one packed record per
// 2048-bit super-block).
type tables struct {
	l0  []uint64
	l12 []record.Record
}

func (this *tables) numL0() int {
	return len(this.l0)
}

func (this *tables) numL12() int {
	return len(this.l12)
}
