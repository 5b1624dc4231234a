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

// Package compare implements the command diffing two files
package compare

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dnote/ldiff/pkg/cli/config"
	"github.com/dnote/ldiff/pkg/cli/consts"
	"github.com/dnote/ldiff/pkg/cli/context"
	"github.com/dnote/ldiff/pkg/cli/infra"
	"github.com/dnote/ldiff/pkg/cli/log"
	"github.com/dnote/ldiff/pkg/cli/output"
	"github.com/dnote/ldiff/pkg/cli/source"
	"github.com/dnote/ldiff/pkg/cli/watch"
	"github.com/dnote/ldiff/pkg/clock"
	"github.com/dnote/ldiff/pkg/diff"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 * Compare two files
 ldiff old.txt new.txt

 * Compare standard input against a file
 git show HEAD:main.go | ldiff - main.go

 * Print the lines again whenever one of the files changes
 ldiff --watch old.txt new.txt
 `

var long = `Print the lines that differ between two files.

A line only in the first file is printed as "< N: text" and a line only in
the second file as "> N: text", where N is the line number in that file.
Lines common to both files are not printed.`

// ErrInvalidArgumentCount is an error for a command not given exactly two files
var ErrInvalidArgumentCount = errors.New("Incorrect number of arguments")

var engineFlag string
var colorFlag string
var statFlag bool
var watchFlag bool

func preRun(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return ErrInvalidArgumentCount
	}

	var stdinCount int
	for _, arg := range args {
		if arg == consts.StdinPath {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errors.New("only one of the files can be read from standard input")
	}
	if stdinCount > 0 && watchFlag {
		return errors.New("--watch cannot be used with standard input")
	}

	return nil
}

// NewCmd returns a new compare command
func NewCmd(ctx context.Ctx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ldiff <file1> <file2>",
		Short:   "Print the lines that differ between two files",
		Long:    long,
		Example: example,
		Version: ctx.Version,
		RunE:    NewRun(ctx),
		PreRunE: preRun,
	}

	f := cmd.Flags()
	f.StringVar(&engineFlag, "engine", "", "the diff engine: dp or myers (defaults to the config)")
	f.StringVar(&colorFlag, "color", "", "when to color the output: auto, always or never (defaults to the config)")
	f.BoolVar(&statFlag, "stat", false, "print the cost of the diff to standard error")
	f.BoolVar(&watchFlag, "watch", false, "print the diff again whenever one of the files changes")

	return cmd
}

type options struct {
	engine   string
	colorize bool
	stat     bool
}

func getOptions(ctx context.Ctx) (options, error) {
	cf := config.Config{
		Engine: ctx.Engine,
		Color:  ctx.Color,
	}
	if engineFlag != "" {
		cf.Engine = engineFlag
	}
	if colorFlag != "" {
		cf.Color = colorFlag
	}

	if err := config.Validate(cf); err != nil {
		return options{}, errors.Wrap(err, "validating flags")
	}

	return options{
		engine:   cf.Engine,
		colorize: output.ShouldColorize(cf.Color),
		stat:     statFlag,
	}, nil
}

// Compute diffs a against b with the given engine
func Compute(engine string, a, b diff.Sequence) diff.Script {
	if engine == config.EngineMyers {
		return diff.Myers(a, b)
	}

	return diff.NewEngine(a, b).Script()
}

func run(w io.Writer, path1, path2 string, opts options) error {
	a, b, err := source.LoadPair(path1, path2)
	if err != nil {
		return err
	}

	log.Debug("diffing %d lines against %d lines with %s\n", len(a), len(b), opts.engine)

	s := Compute(opts.engine, a, b)
	if err := output.Script(w, s, opts.colorize); err != nil {
		return errors.Wrap(err, "printing the script")
	}

	if opts.stat {
		output.Stat(s)
	}

	return nil
}

func reportChange(c clock.Clock) {
	log.Infof("files changed at %s\n", c.Now().Format("15:04:05"))
}

// NewRun returns a new run function
func NewRun(ctx context.Ctx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		opts, err := getOptions(ctx)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()

		if !watchFlag {
			return run(w, args[0], args[1], opts)
		}

		sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		first := true
		return watch.Run(sigCtx, args, watch.DefaultInterval, func() error {
			if !first {
				reportChange(ctx.Clock)
			}
			first = false

			// a file being rewritten may be briefly unreadable, so keep watching
			if err := run(w, args[0], args[1], opts); err != nil {
				log.Errorf("%s\n", err.Error())
			}

			return nil
		})
	}
}
