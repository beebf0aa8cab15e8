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

package internal

// WordBuffer is a growable []uint64 accumulator, the word-oriented
// counterpart of a growable byte buffer. The builder appends one L0 counter
// at a time to a WordBuffer instead of growing a plain slice by hand, so the
// amortized-doubling growth policy lives in one place. L12 records are kept
// in a plain []record.Record, not in a WordBuffer.
type WordBuffer struct {
	data []uint64
}

// NewWordBuffer creates an empty WordBuffer with the given initial capacity
// hint.
func NewWordBuffer(capacityHint int) *WordBuffer {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &WordBuffer{data: make([]uint64, 0, capacityHint)}
}

// Append adds one word to the end of the buffer.
func (this *WordBuffer) Append(w uint64) {
	this.data = append(this.data, w)
}

// Len returns the number of words currently in the buffer.
func (this *WordBuffer) Len() int {
	return len(this.data)
}

// At returns the word at index i.
func (this *WordBuffer) At(i int) uint64 {
	return this.data[i]
}

// Words returns the accumulated words. The builder calls this once, after
// the forward pass completes, to hand the final table over to the index.
func (this *WordBuffer) Words() []uint64 {
	return this.data
}
