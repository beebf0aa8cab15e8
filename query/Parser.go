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

// Package query is the external collaborator named in spec.md §1: it turns
// a query file into a bitvector.BitVector plus a list of index.Query values,
// and turns a slice of index.Result values back into the query output
// format. None of it is part of the succinct core; it is parsing and
// formatting only.
package query

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/succinctds/bitrank/bitvector"
	"github.com/succinctds/bitrank/index"
)

// ParseError reports a malformed query line. Unlike bitrank.PreconditionViolation
// it is a recoverable, caller-facing error — the parser's job is to reject
// bad input cleanly, not to crash the process.
type ParseError struct {
	msg  string
	line int
}

// NewParseError creates a ParseError for the given 1-based line number.
func NewParseError(msg string, line int) *ParseError {
	return &ParseError{msg: msg, line: line}
}

func (this *ParseError) Error() string {
	return fmt.Sprintf("query parse error at line %d: %s", this.line, this.msg)
}

// Message returns the error text without the line prefix.
func (this *ParseError) Message() string {
	return this.msg
}

// Line returns the 1-based input line the error was found on.
func (this *ParseError) Line() int {
	return this.line
}

// Parsed is the result of Parse: the bit sequence and the ordered list of
// queries to run against it.
type Parsed struct {
	Vector  *bitvector.BitVector
	Queries []index.Query
}

// Parse reads the three-section format described in spec.md §6:
//
//	line 1: a count header, ignored by the core
//	line 2: the '0'/'1' bit string
//	lines 3..: one query per line (access I | rank B I | select B K)
//
// Trailing whitespace is stripped from every line, and blank lines are
// skipped everywhere after line 2, per the query-reader tolerance supplemented from original_source/ (see
// DESIGN.md); anything else that does not match the three-verb grammar is
// reported as a *ParseError naming its 1-based line number.
func Parse(r io.Reader) (*Parsed, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<30)

	lineNo := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}

		lineNo++
		return strings.TrimRight(scanner.Text(), " \t\r"), true
	}

	nextNonBlank := func() (string, bool) {
		for {
			line, ok := next()

			if !ok {
				return "", false
			}

			if len(strings.TrimSpace(line)) == 0 {
				continue
			}

			return line, true
		}
	}

	// The header and bit-string lines are positional, not tolerant of
	// blank-line padding: an empty bit-string line (n=0) is itself a
	// meaningful, legal value and must not be skipped looking for content.
	if _, ok := next(); !ok {
		return nil, NewParseError("missing count header", lineNo+1)
	}

	bitLine, ok := next()

	if !ok {
		return nil, NewParseError("missing bit-string line", lineNo+1)
	}

	bv, err := bitvector.NewFromString(bitLine)

	if err != nil {
		return nil, NewParseError(err.Error(), lineNo)
	}

	queries := make([]index.Query, 0, 64)

	for {
		line, ok := nextNonBlank()

		if !ok {
			break
		}

		q, perr := parseQueryLine(line, lineNo)

		if perr != nil {
			return nil, perr
		}

		queries = append(queries, q)
	}

	if err := scanner.Err(); err != nil {
		return nil, NewParseError(err.Error(), lineNo)
	}

	return &Parsed{Vector: bv, Queries: queries}, nil
}

func parseQueryLine(line string, lineNo int) (index.Query, error) {
	fields := strings.Fields(line)

	if len(fields) == 0 {
		return index.Query{}, NewParseError("empty query line", lineNo)
	}

	switch fields[0] {
	case "access":
		if len(fields) != 2 {
			return index.Query{}, NewParseError("access takes exactly one argument", lineNo)
		}

		i, err := strconv.Atoi(fields[1])

		if err != nil || i < 0 {
			return index.Query{}, NewParseError("access argument must be a non-negative integer", lineNo)
		}

		return index.NewAccessQuery(i), nil

	case "rank":
		if len(fields) != 3 {
			return index.Query{}, NewParseError("rank takes exactly two arguments", lineNo)
		}

		b, err := parseBit(fields[1])

		if err != nil {
			return index.Query{}, NewParseError("rank bit must be 0 or 1", lineNo)
		}

		i, err := strconv.Atoi(fields[2])

		if err != nil || i < 0 {
			return index.Query{}, NewParseError("rank index must be a non-negative integer", lineNo)
		}

		return index.NewRankQuery(b, i), nil

	case "select":
		if len(fields) != 3 {
			return index.Query{}, NewParseError("select takes exactly two arguments", lineNo)
		}

		b, err := parseBit(fields[1])

		if err != nil {
			return index.Query{}, NewParseError("select bit must be 0 or 1", lineNo)
		}

		k, err := strconv.Atoi(fields[2])

		if err != nil || k < 1 {
			return index.Query{}, NewParseError("select rank must be a positive integer", lineNo)
		}

		return index.NewSelectQuery(b, k), nil

	default:
		return index.Query{}, NewParseError(fmt.Sprintf("unknown query verb %q", fields[0]), lineNo)
	}
}

func parseBit(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("not a bit: %q", s)
	}
}
