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

package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dnote/ldiff/pkg/assert"
	"github.com/dnote/ldiff/pkg/cli/config"
	"github.com/dnote/ldiff/pkg/dirs"
	"github.com/pkg/errors"
)

func TestInit(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		dirs.Reload()
		defer dirs.Reload()

		ctx, err := Init("v1.0.0", "")

		assert.Equalf(t, err, nil, "Init should succeed")
		assert.Equal(t, ctx.Version, "v1.0.0", "version mismatch")
		assert.Equal(t, ctx.Paths.Config, dirs.ConfigHome, "config home mismatch")
		assert.Equal(t, ctx.ConfigPath, filepath.Join(dirs.ConfigHome, "ldiff", "ldiffrc"), "config path mismatch")
		assert.Equal(t, ctx.Engine, config.EngineDP, "engine mismatch")
		assert.Equal(t, ctx.Color, config.ColorAuto, "color mismatch")
		assert.NotEqual(t, ctx.Clock, nil, "clock should be set")
	})

	t.Run("custom config path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("engine: myers\ncolor: never\n"), 0644); err != nil {
			t.Fatal(errors.Wrap(err, "writing config"))
		}

		ctx, err := Init("master", path)

		assert.Equalf(t, err, nil, "Init should succeed")
		assert.Equal(t, ctx.ConfigPath, path, "config path mismatch")
		assert.Equal(t, ctx.Engine, config.EngineMyers, "engine mismatch")
		assert.Equal(t, ctx.Color, config.ColorNever, "color mismatch")
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("color: rainbow\n"), 0644); err != nil {
			t.Fatal(errors.Wrap(err, "writing config"))
		}

		_, err := Init("master", path)

		assert.Equal(t, errors.Cause(err), config.ErrColorInvalid, "error mismatch")
	})
}
