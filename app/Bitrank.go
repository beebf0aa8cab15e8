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

// Command bitrank builds a succinct rank/select index over a bit-string
// query file and answers the queries it contains. It is the external
// collaborator named in spec.md §1 and §6: argument handling, I/O and
// reporting live here, not in the core packages.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	bitrank "github.com/succinctds/bitrank"
	"github.com/succinctds/bitrank/hash"
	"github.com/succinctds/bitrank/index"
	"github.com/succinctds/bitrank/query"
)

var (
	inputPath  string
	outputPath string
	verbose    bool
	checksum   bool
)

func main() {
	root := newRootCommand()
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		code := bitrank.ERR_UNKNOWN

		if ee, ok := err.(exitError); ok {
			code = ee.code
		}

		os.Exit(code)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitrank",
		Short: "Succinct rank/select index over a bit sequence",
		RunE:  runRoot,
	}

	flags := cmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "query file (header line, bit-string line, query lines)")
	flags.StringVarP(&outputPath, "output", "o", "", "result file (defaults to stdout)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "report build progress and timing")
	flags.BoolVarP(&checksum, "checksum", "x", false, "print an XXHash64 checksum of the parsed bit string")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	in, err := os.Open(inputPath)

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "cannot open input: %v\n", err)
		return exitError{code: bitrank.ERR_OPEN_FILE, cause: err}
	}

	defer in.Close()

	parsed, err := query.Parse(in)

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "cannot parse input: %v\n", err)
		return exitError{code: bitrank.ERR_QUERY_PARSE, cause: err}
	}

	if checksum {
		if err := printChecksum(cmd, parsed); err != nil {
			return err
		}
	}

	var listener bitrank.Listener

	if verbose {
		listener = NewBuildPrinter(cmd.ErrOrStderr())
	}

	buildStart := time.Now()
	idx := index.Build(parsed.Vector, listener)
	buildElapsed := time.Since(buildStart)

	results := make([]index.Result, len(parsed.Queries))

	queryStart := time.Now()

	for i, q := range parsed.Queries {
		results[i] = index.Dispatch(idx, q)
	}

	queryElapsed := time.Since(queryStart)

	out := cmd.OutOrStdout()

	if outputPath != "" {
		f, err := os.Create(outputPath)

		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "cannot create output: %v\n", err)
			return exitError{code: bitrank.ERR_CREATE_FILE, cause: err}
		}

		defer f.Close()
		out = f
	}

	if err := query.WriteResults(out, results); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "cannot write output: %v\n", err)
		return exitError{code: bitrank.ERR_WRITE_FILE, cause: err}
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s bits, %s queries: build %s, query %s\n",
			humanize.Comma(int64(idx.Len())), humanize.Comma(int64(len(parsed.Queries))),
			buildElapsed, queryElapsed)
	}

	return nil
}

func printChecksum(cmd *cobra.Command, parsed *query.Parsed) error {
	hasher, err := hash.NewXXHash64(0)

	if err != nil {
		return exitError{code: bitrank.ERR_UNKNOWN, cause: err}
	}

	buf := make([]byte, parsed.Vector.Len())

	for i := 0; i < parsed.Vector.Len(); i++ {
		if parsed.Vector.Get(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "checksum: %016x\n", hasher.Hash(buf))
	return nil
}

// exitError carries a bitrank ERR_* code out of a cobra RunE without cobra
// printing its own redundant "Error:" line for failures we already reported.
type exitError struct {
	code  int
	cause error
}

func (this exitError) Error() string {
	return this.cause.Error()
}
