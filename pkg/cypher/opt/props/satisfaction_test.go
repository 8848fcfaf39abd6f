// Copyright 2026 The Marsdin Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package props_test

import (
	"runtime"
	"testing"

	"github.com/marsdin/neo4j/pkg/cypher/opt"
	"github.com/marsdin/neo4j/pkg/cypher/opt/props"
)

// Returns the line where it is called, used to identify testcases in errors.
func getLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func TestOrderCandidateSatisfiedBy(t *testing.T) {
	asc := func(p opt.Property) opt.ProvidedColumn {
		return opt.ProvidedColumn{Property: p, Direction: opt.Ascending}
	}
	desc := func(p opt.Property) opt.ProvidedColumn {
		return opt.ProvidedColumn{Property: p, Direction: opt.Descending}
	}
	nA, nB, nC := prop("n", "a"), prop("n", "b"), prop("n", "c")

	testcases := []struct {
		line      int
		candidate props.OrderCandidate
		provided  opt.ProvidedOrder
		satisfied int
		full      bool
	}{
		{
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil),
			provided:  opt.ProvidedOrder{asc(nA)},
			satisfied: 0,
			full:      true,
		},
		{
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(nA),
			provided:  opt.ProvidedOrder{asc(nA)},
			satisfied: 1,
			full:      true,
		},
		{
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(nA),
			provided:  opt.ProvidedOrder{desc(nA)},
			satisfied: 0,
			full:      false,
		},
		{
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(nA).Desc(nB).Asc(nC),
			provided:  opt.ProvidedOrder{asc(nA), desc(nB), asc(nC)},
			satisfied: 3,
			full:      true,
		},
		{
			// The uniform-direction scan covers only the prefix that agrees
			// with it.
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(nA).Asc(nB).Desc(nC),
			provided:  opt.ProvidedOrder{asc(nA), asc(nB), asc(nC)},
			satisfied: 2,
			full:      false,
		},
		{
			// Positional matching: a permuted column order does not count.
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(nB).Asc(nA),
			provided:  opt.ProvidedOrder{asc(nA), asc(nB)},
			satisfied: 0,
			full:      false,
		},
		{
			// The candidate may be longer than the provided order.
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(nA).Asc(nB),
			provided:  opt.ProvidedOrder{asc(nA)},
			satisfied: 1,
			full:      false,
		},
		{
			// Aliased keys are resolved before matching.
			line: getLine(),
			candidate: props.MakeOrderCandidate(props.AliasMap{"x": opt.Variable("n")}).
				Desc(prop("x", "a")),
			provided:  opt.ProvidedOrder{desc(nA)},
			satisfied: 1,
			full:      true,
		},
		{
			// Unresolvable keys are never covered.
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(opt.Opaque("expr1")),
			provided:  opt.ProvidedOrder{asc(nA)},
			satisfied: 0,
			full:      false,
		},
		{
			line:      getLine(),
			candidate: props.MakeOrderCandidate(nil).Asc(nA),
			provided:  opt.ProvidedOrder{},
			satisfied: 0,
			full:      false,
		},
	}

	for _, tc := range testcases {
		s := tc.candidate.SatisfiedBy(tc.provided)
		if len(s.SatisfiedPrefix) != tc.satisfied || s.Full() != tc.full {
			t.Errorf("test defined on line %d failed: expected %d/full=%v, got %d/full=%v",
				tc.line, tc.satisfied, tc.full, len(s.SatisfiedPrefix), s.Full())
		}
		if len(s.SatisfiedPrefix)+len(s.Missing) != len(tc.candidate.Entries()) {
			t.Errorf("test defined on line %d failed: prefix and missing do not cover the candidate",
				tc.line)
		}
	}
}
