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

package props

import "github.com/marsdin/neo4j/pkg/cypher/opt"

// Satisfaction reports how much of a candidate's key sequence a provided
// order already delivers. The planner skips the sort stage entirely when
// satisfaction is full, and can seed a partial sort with the satisfied
// prefix otherwise.
type Satisfaction struct {
	// SatisfiedPrefix holds the candidate entries, from the most significant
	// key, that the provided order already emits in position and direction.
	SatisfiedPrefix []OrderEntry
	// Missing holds the remaining entries that still need sorting.
	Missing []OrderEntry
}

// Full returns true if the provided order covers the whole candidate.
func (s Satisfaction) Full() bool {
	return len(s.Missing) == 0
}

// SatisfiedBy computes how long a prefix of the candidate the given provided
// order covers. An entry is covered when it resolves to the property the
// provided order emits at the same position, with the same direction; the
// walk stops at the first entry that is not covered. Unresolvable keys are
// never covered.
func (c OrderCandidate) SatisfiedBy(provided opt.ProvidedOrder) Satisfaction {
	for i, e := range c.entries {
		if i >= len(provided) {
			return c.satisfactionAt(i)
		}
		p, ok := c.ResolveKey(e.Key)
		if !ok || provided[i].Property != p || provided[i].Direction != e.Direction {
			return c.satisfactionAt(i)
		}
	}
	return Satisfaction{SatisfiedPrefix: c.entries}
}

func (c OrderCandidate) satisfactionAt(i int) Satisfaction {
	return Satisfaction{
		SatisfiedPrefix: c.entries[:i:i],
		Missing:         c.entries[i:],
	}
}
