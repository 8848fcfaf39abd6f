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

import (
	"bytes"

	"github.com/marsdin/neo4j/pkg/cypher/opt"
)

// AliasMap traces projected output names back to the expressions they were
// projected from. A name can map to an opt.Variable (the projection renamed
// an entity) or to an opt.Property (the projection bound the name to a
// property access). Resolution follows at most one level of either
// substitution.
type AliasMap map[string]opt.Expr

// OrderEntry is one requested sort key with its direction.
type OrderEntry struct {
	Key       opt.Expr
	Direction opt.Direction
}

// OrderCandidate is one candidate sort-key sequence, most significant key
// first, together with the alias substitutions needed to trace its keys back
// to canonical property accesses. Candidates are immutable: Asc and Desc
// return extended copies and never modify the receiver, so candidates built
// by chaining off a shared prefix do not interfere.
type OrderCandidate struct {
	entries []OrderEntry
	aliases AliasMap
}

// MakeOrderCandidate returns an empty candidate carrying the given alias
// substitutions. A nil alias map is valid and means the order was expressed
// directly over canonical names.
func MakeOrderCandidate(aliases AliasMap) OrderCandidate {
	return OrderCandidate{aliases: aliases}
}

// Asc returns a copy of the candidate with an ascending sort on key
// appended as its least significant entry.
func (c OrderCandidate) Asc(key opt.Expr) OrderCandidate {
	return c.chain(key, opt.Ascending)
}

// Desc returns a copy of the candidate with a descending sort on key
// appended as its least significant entry.
func (c OrderCandidate) Desc(key opt.Expr) OrderCandidate {
	return c.chain(key, opt.Descending)
}

func (c OrderCandidate) chain(key opt.Expr, dir opt.Direction) OrderCandidate {
	entries := make([]OrderEntry, len(c.entries)+1)
	copy(entries, c.entries)
	entries[len(c.entries)] = OrderEntry{Key: key, Direction: dir}
	return OrderCandidate{entries: entries, aliases: c.aliases}
}

// Empty returns true if the candidate requests no sort keys.
func (c OrderCandidate) Empty() bool {
	return len(c.entries) == 0
}

// Entries returns the requested sort keys, most significant first. The
// returned slice must not be modified.
func (c OrderCandidate) Entries() []OrderEntry {
	return c.entries
}

// Aliases returns the candidate's alias substitutions.
func (c OrderCandidate) Aliases() AliasMap {
	return c.aliases
}

// ResolveKey resolves a sort key to the canonical property access it
// denotes, tracing at most one alias substitution: a property whose owner
// was renamed by a projection (x.prop where x projects an entity variable),
// or a bare name a projection bound directly to a property access. Keys
// with no traceable property (opaque expressions, unprojected bare names,
// properties of an owner projected from anything but a plain variable)
// report ok=false; such keys can never match an index column.
func (c OrderCandidate) ResolveKey(key opt.Expr) (_ opt.Property, ok bool) {
	switch t := key.(type) {
	case opt.Property:
		sub, found := c.aliases[t.Variable]
		if !found {
			return t, true
		}
		if v, isVar := sub.(opt.Variable); isVar {
			return opt.Property{Variable: string(v), Name: t.Name}, true
		}
	case opt.Variable:
		if sub, found := c.aliases[string(t)]; found {
			if p, isProp := sub.(opt.Property); isProp {
				return p, true
			}
		}
	}
	return opt.Property{}, false
}

// Format prints the candidate like "+x.foo,-total".
func (c OrderCandidate) Format(buf *bytes.Buffer) {
	for i := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if c.entries[i].Direction == opt.Descending {
			buf.WriteByte('-')
		} else {
			buf.WriteByte('+')
		}
		buf.WriteString(c.entries[i].Key.String())
	}
}

func (c OrderCandidate) String() string {
	var buf bytes.Buffer
	c.Format(&buf)
	return buf.String()
}
