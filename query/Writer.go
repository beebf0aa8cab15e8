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

package query

import (
	"bufio"
	"io"
	"strconv"

	"github.com/succinctds/bitrank/index"
)

// WriteResults writes one line per result, in order, following spec.md §6:
// access results as "0"/"1", rank results as a decimal count, select
// results as a decimal position or the literal "None" when not found.
func WriteResults(w io.Writer, results []index.Result) error {
	bw := bufio.NewWriter(w)

	for _, r := range results {
		if err := writeResult(bw, r); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeResult(bw *bufio.Writer, r index.Result) error {
	var line string

	switch r.Kind {
	case index.ResultBit:
		if r.Bit {
			line = "1"
		} else {
			line = "0"
		}

	case index.ResultCount:
		line = strconv.Itoa(r.Count)

	case index.ResultPosition:
		if r.Found {
			line = strconv.Itoa(r.Position)
		} else {
			line = "None"
		}
	}

	if _, err := bw.WriteString(line); err != nil {
		return err
	}

	return bw.WriteByte('\n')
}
