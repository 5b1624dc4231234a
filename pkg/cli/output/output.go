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

// Package output provides functions to print edit scripts on the terminal
// in a consistent manner
package output

import (
	"fmt"
	"io"

	"github.com/dnote/ldiff/pkg/cli/config"
	"github.com/dnote/ldiff/pkg/cli/log"
	"github.com/dnote/ldiff/pkg/diff"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func newColor(attr color.Attribute, colorize bool) *color.Color {
	c := color.New(attr)
	if colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

// Script writes the edits of s to w, one per line. Deletions are red and
// insertions are green when colorize is set. The text is the same either way.
func Script(w io.Writer, s diff.Script, colorize bool) error {
	deleted := newColor(color.FgRed, colorize)
	inserted := newColor(color.FgGreen, colorize)

	for _, e := range s {
		line := e.String()

		switch e.Op {
		case diff.OpDelete:
			line = deleted.Sprint(line)
		case diff.OpInsert:
			line = inserted.Sprint(line)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrapf(err, "writing edit for line %d", e.Line)
		}
	}

	return nil
}

// Stat prints a summary of the script
func Stat(s diff.Script) {
	log.Infof("cost: %d (%d deletions, %d insertions)\n", s.Cost(), s.Deletions(), s.Insertions())
}

// ShouldColorize resolves a color mode into whether to colorize
func ShouldColorize(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor
	}
}
