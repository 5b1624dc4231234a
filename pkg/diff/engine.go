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

// Engine computes the minimum edit script between two sequences. The state
// (i, j) stands for the suffixes a[i:] and b[j:]. An Engine owns its table and
// is not safe for concurrent use.
type Engine struct {
	a     Sequence
	b     Sequence
	table *Table
}

// NewEngine returns an engine diffing a against b
func NewEngine(a, b Sequence) *Engine {
	return &Engine{
		a:     a,
		b:     b,
		table: NewTable(len(a), len(b)),
	}
}

// Table returns the memo table of the engine
func (e *Engine) Table() *Table {
	return e.table
}

func (e *Engine) checkState(i, j int) {
	if i < 0 || i > len(e.a) || j < 0 || j > len(e.b) {
		panic(fmt.Sprintf("diff: state (%d, %d) out of range [0, %d]x[0, %d]", i, j, len(e.a), len(e.b)))
	}
}

// Compute returns the result of the state (i, j). It fills the table bottom-up
// over every state that (i, j) depends on, so its stack depth does not grow
// with the length of the input.
func (e *Engine) Compute(i, j int) Result {
	e.checkState(i, j)

	if r, ok := e.table.Get(i, j); ok {
		return r
	}

	for x := len(e.a); x >= i; x-- {
		for y := len(e.b); y >= j; y-- {
			if _, ok := e.table.Get(x, y); ok {
				continue
			}

			e.table.Put(x, y, e.resolve(x, y, e.lookup))
		}
	}

	r, _ := e.table.Get(i, j)
	return r
}

// ComputeRecursive returns the same result as Compute by following the
// recurrence top-down. Its recursion depth is up to len(a)+len(b).
func (e *Engine) ComputeRecursive(i, j int) Result {
	e.checkState(i, j)

	if r, ok := e.table.Get(i, j); ok {
		return r
	}

	r := e.resolve(i, j, e.ComputeRecursive)
	e.table.Put(i, j, r)

	return r
}

// lookup reads a state that the bottom-up fill has already stored
func (e *Engine) lookup(i, j int) Result {
	r, ok := e.table.Get(i, j)
	if !ok {
		panic(fmt.Sprintf("diff: state (%d, %d) read before it was computed", i, j))
	}

	return r
}

// resolve computes the result of (i, j) from its successor states, obtained
// through sub.
//
// A match is taken only when it is strictly cheaper than both edits. Between
// the two edits, the insertion is taken only when strictly cheaper than the
// deletion, so deletions win ties.
func (e *Engine) resolve(i, j int, sub func(i, j int) Result) Result {
	lenA, lenB := len(e.a), len(e.b)

	switch {
	case i == lenA && j == lenB:
		return Result{Cost: 0, Op: OpNone}
	case i == lenA:
		return Result{Cost: lenB - j, Op: OpInsert}
	case j == lenB:
		return Result{Cost: lenA - i, Op: OpDelete}
	}

	del := 1 + sub(i+1, j).Cost
	ins := 1 + sub(i, j+1).Cost

	if e.a[i] == e.b[j] {
		if m := sub(i+1, j+1).Cost; m < del && m < ins {
			return Result{Cost: m, Op: OpMatch}
		}
	}

	if ins < del {
		return Result{Cost: ins, Op: OpInsert}
	}

	return Result{Cost: del, Op: OpDelete}
}

// Cost returns the minimum number of edits between the two sequences
func (e *Engine) Cost() int {
	return e.Compute(0, 0).Cost
}

// Script computes the diff and returns its edits in the order the states are
// visited from (0, 0).
func (e *Engine) Script() Script {
	e.Compute(0, 0)

	ret := Script{}
	i, j := 0, 0
	for i < len(e.a) || j < len(e.b) {
		r := e.lookup(i, j)

		switch r.Op {
		case OpMatch:
			i++
			j++
		case OpDelete:
			ret = append(ret, Edit{Op: OpDelete, Line: i + 1, Text: e.a[i]})
			i++
		case OpInsert:
			ret = append(ret, Edit{Op: OpInsert, Line: j + 1, Text: e.b[j]})
			j++
		default:
			panic(fmt.Sprintf("diff: unexpected %s at state (%d, %d)", r.Op, i, j))
		}
	}

	return ret
}
