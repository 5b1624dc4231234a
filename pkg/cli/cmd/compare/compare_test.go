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

package compare

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dnote/ldiff/pkg/assert"
	"github.com/dnote/ldiff/pkg/cli/config"
	"github.com/dnote/ldiff/pkg/cli/context"
	"github.com/dnote/ldiff/pkg/cli/log"
	"github.com/dnote/ldiff/pkg/cli/source"
	"github.com/dnote/ldiff/pkg/clock"
	"github.com/dnote/ldiff/pkg/diff"
	"github.com/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(errors.Wrap(err, "writing file"))
	}

	return p
}

func newCtx() context.Ctx {
	return context.Ctx{
		Version: "test",
		Engine:  config.EngineDP,
		Color:   config.ColorNever,
		Clock:   clock.NewMock(),
	}
}

func execute(ctx context.Ctx, args ...string) (string, error) {
	var buf bytes.Buffer

	cmd := NewCmd(ctx)
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()

	return buf.String(), err
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		file1    string
		file2    string
		args     []string
		expected string
	}{
		{
			file1:    "a\nb\nc\n",
			file2:    "a\nx\nc\n",
			expected: "< 2: b\n> 2: x\n",
		},
		{
			file1:    "same\nlines\n",
			file2:    "same\nlines\n",
			expected: "",
		},
		{
			file1:    "",
			file2:    "p\nq\n",
			expected: "> 1: p\n> 2: q\n",
		},
		{
			file1:    "p\nq\n",
			file2:    "",
			expected: "< 1: p\n< 2: q\n",
		},
		{
			file1:    "line1\nline2\n",
			file2:    "line1\nline2\nline3\n",
			args:     []string{"--engine", "myers"},
			expected: "> 3: line3\n",
		},
		{
			file1:    "a\nb\nc\n",
			file2:    "a\nx\nc\n",
			args:     []string{"--color", "never", "--engine", "dp"},
			expected: "< 2: b\n> 2: x\n",
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", idx), func(t *testing.T) {
			dir := t.TempDir()
			p1 := writeFile(t, dir, "file1", tc.file1)
			p2 := writeFile(t, dir, "file2", tc.file2)

			got, err := execute(newCtx(), append(tc.args, p1, p2)...)
			if err != nil {
				t.Fatal(errors.Wrap(err, "executing"))
			}

			assert.Equal(t, got, tc.expected, "output mismatch")
		})
	}
}

func TestCompareConfigEngine(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "file1", "a\nb\n")
	p2 := writeFile(t, dir, "file2", "b\na\n")

	ctx := newCtx()
	ctx.Engine = config.EngineMyers

	got, err := execute(ctx, p1, p2)
	if err != nil {
		t.Fatal(errors.Wrap(err, "executing"))
	}

	a, b, err := source.LoadPair(p1, p2)
	if err != nil {
		t.Fatal(errors.Wrap(err, "loading"))
	}
	assert.Equal(t, got, diff.Myers(a, b).String(), "output mismatch")
}

func TestCompareArguments(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "file", "a\n")

	testCases := []struct {
		args []string
	}{
		{args: []string{}},
		{args: []string{p}},
		{args: []string{p, p, p}},
		{args: []string{"-", "-"}},
		{args: []string{"--watch", "-", p}},
		{args: []string{"--engine", "patience", p, p}},
		{args: []string{"--color", "sometimes", p, p}},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", idx), func(t *testing.T) {
			_, err := execute(newCtx(), tc.args...)
			assert.NotEqual(t, err, nil, "execute should fail")
		})
	}

	t.Run("argument count", func(t *testing.T) {
		_, err := execute(newCtx(), p)
		assert.Equal(t, errors.Cause(err), ErrInvalidArgumentCount, "error mismatch")
	})
}

func TestCompareMissingFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "file", "a\n")
	missing := filepath.Join(dir, "missing")

	got, err := execute(newCtx(), p, missing)

	var inputErr *source.InputError
	assert.Equal(t, errors.As(err, &inputErr), true, "error should be an input error")
	assert.Equal(t, inputErr.Path, missing, "path mismatch")
	assert.Equal(t, got, "", "nothing should be printed")
}

func TestReportChange(t *testing.T) {
	var buf bytes.Buffer
	restore := log.SetOutput(&buf)
	defer restore()

	c := clock.NewMock()
	c.SetNow(time.Date(2024, time.March, 1, 9, 5, 30, 0, time.UTC))
	reportChange(c)

	c.Advance(90 * time.Second)
	reportChange(c)

	got := buf.String()
	assert.Contains(t, got, "files changed at 09:05:30\n", "first report mismatch")
	assert.Contains(t, got, "files changed at 09:07:00\n", "second report mismatch")
}

func TestCompute(t *testing.T) {
	a := diff.Sequence{"a", "b", "c", "d"}
	b := diff.Sequence{"b", "c", "e"}

	assert.DeepEqual(t, Compute(config.EngineDP, a, b), diff.NewEngine(a, b).Script(), "dp script mismatch")
	assert.DeepEqual(t, Compute(config.EngineMyers, a, b), diff.Myers(a, b), "myers script mismatch")
}
