// Copyright 2025 The Marsdin Authors.
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

import "bytes"

// DesiredOrdering aggregates what order a query wants from an operator: at
// most one required candidate (an order the query mandates, e.g. an explicit
// sort clause) and any number of interesting candidates (orders that are not
// mandatory but would let a downstream operation like grouping skip work),
// most preferred first.
//
// The zero value means "no preference". DesiredOrdering is immutable;
// Require and Interest return new values.
type DesiredOrdering struct {
	required    OrderCandidate
	interesting []OrderCandidate
}

// Require returns a desired ordering with its required candidate set to c,
// replacing any previous required candidate.
func (d DesiredOrdering) Require(c OrderCandidate) DesiredOrdering {
	d.required = c
	return d
}

// Interest returns a desired ordering with c appended after any existing
// interesting candidates, making it the least preferred so far.
func (d DesiredOrdering) Interest(c OrderCandidate) DesiredOrdering {
	interesting := make([]OrderCandidate, len(d.interesting)+1)
	copy(interesting, d.interesting)
	interesting[len(d.interesting)] = c
	d.interesting = interesting
	return d
}

// Required returns the required candidate, if one is present.
func (d DesiredOrdering) Required() (_ OrderCandidate, ok bool) {
	return d.required, !d.required.Empty()
}

// Interesting returns the interesting candidates, most preferred first. The
// returned slice must not be modified.
func (d DesiredOrdering) Interesting() []OrderCandidate {
	return d.interesting
}

// Any returns true if any ordering whatsoever is acceptable.
func (d DesiredOrdering) Any() bool {
	return d.required.Empty() && len(d.interesting) == 0
}

func (d DesiredOrdering) String() string {
	if d.Any() {
		return "any"
	}
	var buf bytes.Buffer
	if !d.required.Empty() {
		buf.WriteString("required(")
		d.required.Format(&buf)
		buf.WriteByte(')')
	}
	for i := range d.interesting {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString("interesting(")
		d.interesting[i].Format(&buf)
		buf.WriteByte(')')
	}
	return buf.String()
}
