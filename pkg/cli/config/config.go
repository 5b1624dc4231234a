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

package config

import (
	"os"
	"path/filepath"

	"github.com/dnote/ldiff/pkg/cli/consts"
	"github.com/dnote/ldiff/pkg/cli/context"
	"github.com/dnote/ldiff/pkg/cli/log"
	"github.com/dnote/ldiff/pkg/cli/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// EngineDP is the dynamic programming engine
	EngineDP = "dp"
	// EngineMyers is the Myers engine
	EngineMyers = "myers"

	// ColorAuto colors the output only when it is a terminal
	ColorAuto = "auto"
	// ColorAlways always colors the output
	ColorAlways = "always"
	// ColorNever never colors the output
	ColorNever = "never"
)

var (
	// ErrEngineInvalid is an error for a configuration with an unknown engine
	ErrEngineInvalid = errors.New("Invalid engine")
	// ErrColorInvalid is an error for a configuration with an unknown color mode
	ErrColorInvalid = errors.New("Invalid color mode")
)

// Config holds ldiff configuration
type Config struct {
	Engine string `yaml:"engine"`
	Color  string `yaml:"color"`
}

// Default returns the configuration used when no config file exists
func Default() Config {
	return Config{
		Engine: EngineDP,
		Color:  ColorAuto,
	}
}

// GetPath returns the path to the ldiff config file
func GetPath(paths context.Paths) string {
	return filepath.Join(paths.Config, consts.DirName, consts.ConfigFilename)
}

// Validate checks that every value of the config is known
func Validate(c Config) error {
	switch c.Engine {
	case EngineDP, EngineMyers:
	default:
		return errors.Wrapf(ErrEngineInvalid, "'%s'", c.Engine)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Wrapf(ErrColorInvalid, "'%s'", c.Color)
	}

	return nil
}

// Read reads the config file at the given path. A missing file yields the
// default config. Values left empty in the file take their default.
func Read(path string) (Config, error) {
	ret := Default()

	ok, err := utils.FileExists(path)
	if err != nil {
		return ret, errors.Wrapf(err, "checking config file at %s", path)
	}
	if !ok {
		log.Debug("no config file at %s, using defaults\n", path)
		return ret, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return ret, errors.Wrap(err, "reading config file")
	}

	var cf Config
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return ret, errors.Wrap(err, "unmarshalling config")
	}

	if cf.Engine != "" {
		ret.Engine = cf.Engine
	}
	if cf.Color != "" {
		ret.Color = cf.Color
	}

	if err := Validate(ret); err != nil {
		return ret, errors.Wrapf(err, "validating config at %s", path)
	}

	return ret, nil
}
