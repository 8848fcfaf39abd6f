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

package opt

import "bytes"

// ProvidedColumn is one column of a provided order: a property the emitted
// rows are sorted on, with the direction of the sort.
type ProvidedColumn struct {
	Property  Property
	Direction Direction
}

// ProvidedOrder describes the order an index-backed scan actually emits rows
// in. It is either empty (the scan guarantees no order) or covers every
// index column in the index's own column order; it is never a partial
// prefix. All columns carry the same direction, since a single scan can only
// move one way through the index.
//
// The planner compares a provided order against the order it requires to
// decide whether an explicit sort stage is still necessary.
type ProvidedOrder []ProvidedColumn

// Empty returns true if the scan provides no ordering guarantee.
func (p ProvidedOrder) Empty() bool {
	return len(p) == 0
}

// Properties returns the set of properties the order mentions.
func (p ProvidedOrder) Properties() PropertySet {
	s := make(PropertySet, len(p))
	for i := range p {
		s.Add(p[i].Property)
	}
	return s
}

// Equals returns true if the two orders have the same columns, in the same
// order, with the same directions.
func (p ProvidedOrder) Equals(rhs ProvidedOrder) bool {
	if len(p) != len(rhs) {
		return false
	}
	for i := range p {
		if p[i] != rhs[i] {
			return false
		}
	}
	return true
}

// Format prints the order like "+n.foo,-m.bar".
func (p ProvidedOrder) Format(buf *bytes.Buffer) {
	for i := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if p[i].Direction == Descending {
			buf.WriteByte('-')
		} else {
			buf.WriteByte('+')
		}
		buf.WriteString(p[i].Property.String())
	}
}

func (p ProvidedOrder) String() string {
	var buf bytes.Buffer
	p.Format(&buf)
	return buf.String()
}
