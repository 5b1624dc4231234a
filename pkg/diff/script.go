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
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Edit is a single line removed from the first sequence or inserted from the
// second one. Line is 1-based and refers to the sequence the text comes from.
type Edit struct {
	Op   Op
	Line int
	Text string
}

// String renders the edit as "< N: text" or "> N: text"
func (e Edit) String() string {
	return fmt.Sprintf("%s %d: %s", e.Op.Symbol(), e.Line, e.Text)
}

// Script is an ordered list of edits
type Script []Edit

// Cost returns the number of edits in the script
func (s Script) Cost() int {
	return len(s)
}

func (s Script) count(op Op) int {
	var n int
	for _, e := range s {
		if e.Op == op {
			n++
		}
	}

	return n
}

// Deletions returns the number of deleted lines
func (s Script) Deletions() int {
	return s.count(OpDelete)
}

// Insertions returns the number of inserted lines
func (s Script) Insertions() int {
	return s.count(OpInsert)
}

// Render writes one line per edit to w
func (s Script) Render(w io.Writer) error {
	for _, e := range s {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return errors.Wrapf(err, "writing line %d", e.Line)
		}
	}

	return nil
}

// String returns the rendered script
func (s Script) String() string {
	var sb strings.Builder
	// writes to a strings.Builder do not fail
	_ = s.Render(&sb)

	return sb.String()
}

// Apply replays the script on a and returns the resulting sequence. It returns
// an error if the script does not line up with a.
func (s Script) Apply(a Sequence) (Sequence, error) {
	ret := Sequence{}

	// next is the 0-based index of the first line of a not yet consumed
	next := 0
	for _, e := range s {
		switch e.Op {
		case OpDelete:
			idx := e.Line - 1
			if idx < next || idx >= len(a) {
				return nil, errors.Errorf("deletion of line %d is out of order", e.Line)
			}
			if a[idx] != e.Text {
				return nil, errors.Errorf("line %d is %q, not %q", e.Line, a[idx], e.Text)
			}

			ret = append(ret, a[next:idx]...)
			next = idx + 1
		case OpInsert:
			for len(ret)+1 < e.Line && next < len(a) {
				ret = append(ret, a[next])
				next++
			}
			if len(ret)+1 != e.Line {
				return nil, errors.Errorf("insertion of line %d is out of order", e.Line)
			}

			ret = append(ret, e.Text)
		default:
			return nil, errors.Errorf("unexpected operation %s", e.Op)
		}
	}

	ret = append(ret, a[next:]...)

	return ret, nil
}
