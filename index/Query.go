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

// QueryKind tags which of the three operations a Query carries.
type QueryKind int

const (
	QueryAccess QueryKind = iota
	QueryRank
	QuerySelect
)

// Query is a tagged request: Access(I), Rank(B, I) or Select(B, K). Only the
// fields relevant to Kind are meaningful.
type Query struct {
	Kind QueryKind
	B    bool
	I    int
	K    int
}

// NewAccessQuery builds an Access(i) query.
func NewAccessQuery(i int) Query {
	return Query{Kind: QueryAccess, I: i}
}

// NewRankQuery builds a Rank(b, i) query.
func NewRankQuery(b bool, i int) Query {
	return Query{Kind: QueryRank, B: b, I: i}
}

// NewSelectQuery builds a Select(b, k) query.
func NewSelectQuery(b bool, k int) Query {
	return Query{Kind: QuerySelect, B: b, K: k}
}

// ResultKind tags which field of a Result is meaningful.
type ResultKind int

const (
	ResultBit ResultKind = iota
	ResultCount
	ResultPosition
)

// Result is the tagged outcome of dispatching a Query. For a Select query
// that found fewer than k matching bits, Found is false and Position is
// meaningless.
type Result struct {
	Kind     ResultKind
	Bit      bool
	Count    int
	Position int
	Found    bool
}

// Dispatch routes q to the matching engine on idx and returns a tagged
// Result. Access and Rank preconditions are enforced as hard panics inside
// the engines they call; Select reports an out-of-range count the same way,
// reserving Found==false for the in-range "fewer than k matches exist" case.
func Dispatch(idx *Index, q Query) Result {
	switch q.Kind {
	case QueryAccess:
		return Result{Kind: ResultBit, Bit: idx.Access(q.I)}

	case QueryRank:
		return Result{Kind: ResultCount, Count: idx.Rank(q.B, q.I)}

	case QuerySelect:
		pos, ok := idx.Select(q.B, q.K)
		return Result{Kind: ResultPosition, Position: pos, Found: ok}

	default:
		panic("index: unknown query kind")
	}
}
