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

package main

import (
	"os"
	"strings"

	"github.com/dnote/ldiff/pkg/cli/infra"
	"github.com/dnote/ldiff/pkg/cli/log"
	"github.com/pkg/errors"

	// commands
	"github.com/dnote/ldiff/pkg/cli/cmd/compare"
	"github.com/dnote/ldiff/pkg/cli/cmd/root"
)

// versionTag is populated during link time
var versionTag = "master"

// parseConfigPath extracts the --config flag value from command line arguments.
// Returns empty string if not found.
func parseConfigPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		// Handle --config=value
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
		// Handle --config value
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func main() {
	// The config supplies flag defaults, so it has to be read before cobra
	// parses the flags.
	configPath := parseConfigPath(os.Args[1:])

	ctx, err := infra.Init(versionTag, configPath)
	if err != nil {
		log.Errorf("%s\n", errors.Wrap(err, "initializing context").Error())
		os.Exit(1)
	}

	root.Mount(compare.NewCmd(*ctx))

	if err := root.Execute(); err != nil {
		log.Errorf("%s\n", err.Error())
		if errors.Cause(err) == compare.ErrInvalidArgumentCount {
			log.Plainf("Usage: %s\n", root.GetRoot().UseLine())
		}
		os.Exit(1)
	}
}
