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

import "fmt"

// ColumnType is an opaque tag for the declared value type of an indexed
// column. The ordering machinery never interprets it; it is only handed to
// the capability oracle, which may report different capabilities for
// different type combinations (e.g. mixed numeric and textual columns).
type ColumnType string

// Column types commonly declared by the index catalog.
const (
	ColumnTypeInt      ColumnType = "int"
	ColumnTypeFloat    ColumnType = "float"
	ColumnTypeString   ColumnType = "string"
	ColumnTypeBool     ColumnType = "bool"
	ColumnTypeDateTime ColumnType = "datetime"
	ColumnTypeDuration ColumnType = "duration"
	ColumnTypePoint    ColumnType = "point"
)

// IndexColumn is one physical column of an index: the property it stores and
// its declared type, in the index's fixed column order.
type IndexColumn struct {
	Property Property
	Type     ColumnType
}

// IndexColumns is the full column list of an index, in the index's own
// immutable column order.
type IndexColumns []IndexColumn

// Properties returns the column properties, in index column order.
func (ic IndexColumns) Properties() []Property {
	props := make([]Property, len(ic))
	for i := range ic {
		props[i] = ic[i].Property
	}
	return props
}

// ColumnTypes returns the declared column types, in index column order.
func (ic IndexColumns) ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(ic))
	for i := range ic {
		types[i] = ic[i].Type
	}
	return types
}

// IndexOrderCapability describes the scan directions an index can physically
// provide for a given combination of column types.
type IndexOrderCapability int8

const (
	// OrderCapabilityNone means the index provides no ordering guarantee.
	OrderCapabilityNone IndexOrderCapability = iota
	// OrderCapabilityAsc means the index can only scan in ascending order.
	OrderCapabilityAsc
	// OrderCapabilityDesc means the index can only scan in descending order.
	OrderCapabilityDesc
	// OrderCapabilityBoth means the index can scan in either direction.
	OrderCapabilityBoth
)

// CanAsc returns true if the index can scan in ascending order.
func (c IndexOrderCapability) CanAsc() bool {
	return c == OrderCapabilityAsc || c == OrderCapabilityBoth
}

// CanDesc returns true if the index can scan in descending order.
func (c IndexOrderCapability) CanDesc() bool {
	return c == OrderCapabilityDesc || c == OrderCapabilityBoth
}

func (c IndexOrderCapability) String() string {
	switch c {
	case OrderCapabilityNone:
		return "none"
	case OrderCapabilityAsc:
		return "asc"
	case OrderCapabilityDesc:
		return "desc"
	case OrderCapabilityBoth:
		return "both"
	default:
		return fmt.Sprintf("invalid-capability(%d)", int8(c))
	}
}

// OrderCapability reports the scan directions an index over columns of the
// given types can provide. It is consulted exactly once per resolution, with
// the full column type sequence of the index (never a sub-prefix). It must
// be stateless and total.
type OrderCapability func(columnTypes []ColumnType) IndexOrderCapability
