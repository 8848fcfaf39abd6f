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

// Expr is a sort key as the planner sees it: a property access, a bare
// output name, or an expression the ordering machinery cannot see into.
// The set of implementations is closed and lives in this package.
type Expr interface {
	String() string

	// sortKey keeps the set of sort key expressions closed.
	sortKey()
}

// Variable is a reference to an entity or a projected output column by name.
type Variable string

// Property names a scalar value read off the entity bound to Variable, like
// n.age. Two Property values are equal iff both components are equal.
type Property struct {
	Variable string
	Name     string
}

// Opaque identifies a computed sort expression that cannot be traced back to
// a property access. An opaque key never matches an index column.
type Opaque string

func (v Variable) sortKey() {}
func (p Property) sortKey() {}
func (o Opaque) sortKey()   {}

func (v Variable) String() string { return string(v) }
func (p Property) String() string { return p.Variable + "." + p.Name }
func (o Opaque) String() string   { return string(o) }

// PropertySet is an unordered set of properties.
type PropertySet map[Property]struct{}

// MakePropertySet returns a set containing the given properties.
func MakePropertySet(props ...Property) PropertySet {
	s := make(PropertySet, len(props))
	for _, p := range props {
		s.Add(p)
	}
	return s
}

// Add adds the given property to the set.
func (s PropertySet) Add(p Property) {
	s[p] = struct{}{}
}

// Contains returns true if the set contains the given property.
func (s PropertySet) Contains(p Property) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of properties in the set.
func (s PropertySet) Len() int {
	return len(s)
}

// Empty returns true if the set contains no properties.
func (s PropertySet) Empty() bool {
	return len(s) == 0
}
