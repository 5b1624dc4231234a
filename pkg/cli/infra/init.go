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

// Package infra provides operations and definitions for the
// local infrastructure for ldiff
package infra

import (
	"github.com/dnote/ldiff/pkg/cli/config"
	"github.com/dnote/ldiff/pkg/cli/context"
	"github.com/dnote/ldiff/pkg/cli/log"
	"github.com/dnote/ldiff/pkg/clock"
	"github.com/dnote/ldiff/pkg/dirs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RunEFunc is a function type of ldiff commands
type RunEFunc func(*cobra.Command, []string) error

func newPaths() context.Paths {
	return context.Paths{
		Home:   dirs.Home,
		Config: dirs.ConfigHome,
	}
}

// Init builds the context from the config file at configPath, or at the
// default location if configPath is empty
func Init(versionTag, configPath string) (*context.Ctx, error) {
	paths := newPaths()

	if configPath == "" {
		configPath = config.GetPath(paths)
	}

	cf, err := config.Read(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	ctx := context.Ctx{
		Paths:      paths,
		Version:    versionTag,
		ConfigPath: configPath,
		Engine:     cf.Engine,
		Color:      cf.Color,
		Clock:      clock.New(),
	}

	log.Debug("context: %+v\n", ctx)

	return &ctx, nil
}
