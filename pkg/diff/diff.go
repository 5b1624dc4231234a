/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package diff computes line-by-line edit scripts between two sequences of
// lines. The default engine finds a minimum number of insertions and deletions
// with a dynamic program over pairs of suffix positions, and always picks the
// same script when several have the same cost.
package diff

// Sequence is an ordered list of lines. It is never mutated once loaded.
type Sequence []string

// Op is the operation chosen at a state of the diff
type Op uint8

const (
	// OpNone marks the state where both sequences are exhausted
	OpNone Op = iota
	// OpMatch consumes one line of each sequence without emitting anything
	OpMatch
	// OpDelete removes the current line of the first sequence
	OpDelete
	// OpInsert inserts the current line of the second sequence
	OpInsert
)

// String returns the name of the operation
func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpMatch:
		return "match"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Symbol returns the marker used when rendering an edit of this operation
func (o Op) Symbol() string {
	switch o {
	case OpDelete:
		return "<"
	case OpInsert:
		return ">"
	default:
		return ""
	}
}

// Result is the outcome of a state: the minimum number of edits needed to
// turn the remaining lines of the first sequence into the remaining lines of
// the second, and the operation that starts such a script.
type Result struct {
	Cost int
	Op   Op
}
