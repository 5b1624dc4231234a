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

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dnote/ldiff/pkg/assert"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file.txt")

	ok, err := FileExists(path)
	assert.Equal(t, err, nil, "FileExists should succeed on a missing file")
	assert.Equal(t, ok, false, "file should not exist yet")

	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	ok, err = FileExists(path)
	assert.Equal(t, err, nil, "FileExists should succeed")
	assert.Equal(t, ok, true, "file should exist")

	ok, err = FileExists(tmpDir)
	assert.Equal(t, err, nil, "FileExists should succeed on a directory")
	assert.Equal(t, ok, true, "directory should exist")
}
