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
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// joinLines terminates every line with a newline so that each line maps to
// exactly one rune in line mode, including the last one.
func joinLines(s Sequence) string {
	var sb strings.Builder
	for _, line := range s {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// splitLines undoes joinLines for the text of a single diff
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Myers computes a minimum edit script with the Myers algorithm by wrapping
// github.com/sergi/go-diff/diffmatchpatch in line mode. Its cost always equals
// Engine.Cost, but when several scripts have the same cost it may pick a
// different one.
func Myers(a, b Sequence) Script {
	dmp := diffmatchpatch.New()
	// no deadline and no half-match speedup, so the result stays minimal
	dmp.DiffTimeout = 0

	aChars, bChars, arr := dmp.DiffLinesToRunes(joinLines(a), joinLines(b))
	diffs := dmp.DiffMainRunes(aChars, bChars, false)
	diffs = dmp.DiffCharsToLines(diffs, arr)

	ret := Script{}
	i, j := 0, 0
	for _, d := range diffs {
		lines := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			i += len(lines)
			j += len(lines)
		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				ret = append(ret, Edit{Op: OpDelete, Line: i + 1, Text: line})
				i++
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				ret = append(ret, Edit{Op: OpInsert, Line: j + 1, Text: line})
				j++
			}
		}
	}

	return ret
}
