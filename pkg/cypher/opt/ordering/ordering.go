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

// Package ordering resolves the order an index-backed scan provides, so the
// planner can avoid a sort stage when the chosen access path already emits
// rows in (or compatible with) the order the query wants.
package ordering

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/marsdin/neo4j/pkg/cypher/opt"
	"github.com/marsdin/neo4j/pkg/cypher/opt/props"
)

// ForIndexOperator resolves the order rows come out of an index-backed scan
// over indexProperties, given the order the query desires and the directions
// the index can physically provide for columnTypes.
//
// The capability oracle is consulted exactly once, with the full column type
// sequence. A single scan emits one uniform direction across every index
// column; a candidate that asks for mixed directions keeps only the
// direction of its first key that the index covers. The result is either
// empty or covers every index column in the index's own column order, never
// a partial prefix.
//
// The computation is pure; concurrent calls need no synchronization.
func ForIndexOperator(
	desired props.DesiredOrdering,
	indexProperties []opt.Property,
	columnTypes []opt.ColumnType,
	capability opt.OrderCapability,
) opt.ProvidedOrder {
	if len(indexProperties) != len(columnTypes) {
		panic(errors.AssertionFailedf(
			"index has %d properties but %d column types",
			redact.Safe(len(indexProperties)), redact.Safe(len(columnTypes)),
		))
	}
	orderCap := capability(columnTypes)
	if orderCap == opt.OrderCapabilityNone {
		return nil
	}

	indexProps := opt.MakePropertySet(indexProperties...)
	candidate, _ := selectCandidate(desired, indexProps)
	dir := resolveDirection(orderCap, candidate, indexProps)

	provided := make(opt.ProvidedOrder, len(indexProperties))
	for i, p := range indexProperties {
		provided[i] = opt.ProvidedColumn{Property: p, Direction: dir}
	}
	return provided
}

// selectCandidate picks the candidate the provided order takes its direction
// from: the required candidate when it mentions at least one of the index's
// properties, otherwise the first interesting candidate (in preference
// order) that does. Matching is existence-based, not positional: a
// candidate is usable because it talks about one of the index's columns at
// all; whether its requested directions can be honored is resolved
// separately, since the scan produces some order either way and the planner
// needs to know which.
func selectCandidate(
	desired props.DesiredOrdering, indexProps opt.PropertySet,
) (_ props.OrderCandidate, ok bool) {
	if required, present := desired.Required(); present && mentionsIndex(required, indexProps) {
		return required, true
	}
	for _, c := range desired.Interesting() {
		if mentionsIndex(c, indexProps) {
			return c, true
		}
	}
	return props.OrderCandidate{}, false
}

func mentionsIndex(c props.OrderCandidate, indexProps opt.PropertySet) bool {
	for _, e := range c.Entries() {
		if p, ok := c.ResolveKey(e.Key); ok && indexProps.Contains(p) {
			return true
		}
	}
	return false
}

// resolveDirection fixes the single direction the scan will use. An index
// that can only go one way overrides whatever was asked for. When both
// directions are available, the first candidate key the index covers
// decides; later keys that asked for the opposite direction are overruled,
// since one scan cannot change direction mid-index. Absent any signal the
// scan defaults to ascending.
func resolveDirection(
	orderCap opt.IndexOrderCapability, candidate props.OrderCandidate, indexProps opt.PropertySet,
) opt.Direction {
	switch orderCap {
	case opt.OrderCapabilityAsc:
		return opt.Ascending
	case opt.OrderCapabilityDesc:
		return opt.Descending
	}
	for _, e := range candidate.Entries() {
		if p, ok := candidate.ResolveKey(e.Key); ok && indexProps.Contains(p) {
			return e.Direction
		}
	}
	return opt.Ascending
}
