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

// Package source loads the sequences of lines to be diffed
package source

import (
	"bufio"
	"io"
	"os"

	"github.com/dnote/ldiff/pkg/cli/consts"
	"github.com/dnote/ldiff/pkg/diff"
	"github.com/pkg/errors"
)

// maxLineSize is the longest line Read accepts
const maxLineSize = 64 * 1024 * 1024

// InputError is returned when an input cannot be opened or read
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return "reading " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *InputError) Unwrap() error {
	return e.Err
}

// Read splits r into lines. Both "\n" and "\r\n" end a line, and a final line
// terminator does not produce an empty last line.
func Read(r io.Reader) (diff.Sequence, error) {
	ret := diff.Sequence{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		ret = append(ret, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning lines")
	}

	return ret, nil
}

// Load reads the file at path. The path "-" reads standard input.
func Load(path string) (diff.Sequence, error) {
	if path == consts.StdinPath {
		ret, err := Read(os.Stdin)
		if err != nil {
			return nil, &InputError{Path: "standard input", Err: err}
		}

		return ret, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	ret, err := Read(f)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	return ret, nil
}

// LoadPair loads both inputs. Nothing is returned unless both could be read.
func LoadPair(path1, path2 string) (diff.Sequence, diff.Sequence, error) {
	a, err := Load(path1)
	if err != nil {
		return nil, nil, err
	}

	b, err := Load(path2)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
