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

package record

import (
	"fmt"
	"io"
)

// Dump writes a human-readable rendering of a Record to w: the L1 counter,
// each valid L2 slot, and the raw packed word. Intended for --verbose CLI
// diagnostics and for debugging a failing property test, the same role
// kanzi's DebugInputBitStream/DebugOutputBitStream play around the raw
// bitstream.
func Dump(w io.Writer, label string, r Record) {
	fmt.Fprintf(w, "%s: l1=%d l2=[", label, r.L1())

	for j := 0; j < r.Len(); j++ {
		if j > 0 {
			fmt.Fprint(w, " ")
		}

		fmt.Fprintf(w, "%d", r.L2(j))
	}

	fmt.Fprintf(w, "] word=0x%016x\n", r.Word())
}
