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

package diff

import (
	"fmt"
)

// Table memoizes the Result of every state (i, j) with 0 <= i <= lenA and
// 0 <= j <= lenB. It is backed by a flat slice indexed by i*(lenB+1)+j.
type Table struct {
	lenA   int
	lenB   int
	cells  []Result
	filled []bool
	count  int
}

// NewTable allocates a table for sequences of the given lengths
func NewTable(lenA, lenB int) *Table {
	if lenA < 0 || lenB < 0 {
		panic(fmt.Sprintf("diff: negative table dimensions %dx%d", lenA, lenB))
	}

	size := (lenA + 1) * (lenB + 1)

	return &Table{
		lenA:   lenA,
		lenB:   lenB,
		cells:  make([]Result, size),
		filled: make([]bool, size),
	}
}

func (t *Table) index(i, j int) int {
	if i < 0 || i > t.lenA || j < 0 || j > t.lenB {
		panic(fmt.Sprintf("diff: state (%d, %d) out of range [0, %d]x[0, %d]", i, j, t.lenA, t.lenB))
	}

	return i*(t.lenB+1) + j
}

// Get returns the result stored for the state, if any
func (t *Table) Get(i, j int) (Result, bool) {
	idx := t.index(i, j)
	if !t.filled[idx] {
		return Result{}, false
	}

	return t.cells[idx], true
}

// Put stores the result for the state. Storing the same result twice is a
// no-op. A state can only ever hold one result, so storing a different one
// panics.
func (t *Table) Put(i, j int, r Result) {
	idx := t.index(i, j)
	if t.filled[idx] {
		if t.cells[idx] != r {
			panic(fmt.Sprintf("diff: state (%d, %d) already holds %+v, cannot store %+v", i, j, t.cells[idx], r))
		}

		return
	}

	t.cells[idx] = r
	t.filled[idx] = true
	t.count++
}

// Len returns the number of states stored in the table
func (t *Table) Len() int {
	return t.count
}
