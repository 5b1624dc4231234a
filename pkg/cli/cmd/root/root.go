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

package root

import (
	"github.com/spf13/cobra"
)

var configPathFlag string

var root = &cobra.Command{
	Use:           "ldiff",
	Short:         "ldiff - a line by line diff",
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	root.PersistentFlags().StringVar(&configPathFlag, "config", "", "the path to the config file (defaults to standard location)")
}

// GetRoot returns the root command
func GetRoot() *cobra.Command {
	return root
}

// Mount makes cmd the behavior of the root command, taking over its usage,
// version, flags and run functions
func Mount(cmd *cobra.Command) {
	root.Use = cmd.Use
	root.Short = cmd.Short
	root.Long = cmd.Long
	root.Example = cmd.Example
	root.Version = cmd.Version
	root.PreRunE = cmd.PreRunE
	root.RunE = cmd.RunE
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.Flags().AddFlagSet(cmd.Flags())
}

// Execute runs the main command
func Execute() error {
	return root.Execute()
}
