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

// Direction is the direction of a sort key or of an index scan.
type Direction int8

const (
	// Ascending sorts from smallest to largest value.
	Ascending Direction = iota
	// Descending sorts from largest to smallest value.
	Descending
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("invalid-direction(%d)", int8(d))
	}
}
