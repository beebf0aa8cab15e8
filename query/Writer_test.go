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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/succinctds/bitrank/index"
)

func TestWriteResults(t *testing.T) {
	results := []index.Result{
		{Kind: index.ResultBit, Bit: true},
		{Kind: index.ResultBit, Bit: false},
		{Kind: index.ResultCount, Count: 42},
		{Kind: index.ResultPosition, Position: 7, Found: true},
		{Kind: index.ResultPosition, Found: false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, results))
	require.Equal(t, "1\n0\n42\n7\nNone\n", buf.String())
}

func TestWriteResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, nil))
	require.Equal(t, "", buf.String())
}
