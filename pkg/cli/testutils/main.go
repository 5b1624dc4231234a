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

// Package testutils provides utilities used in tests
package testutils

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// Timeout for waiting for output in tests
const outputTimeout = 10 * time.Second

// RunCmdOptions is an option for RunCmd
type RunCmdOptions struct {
	Env   []string
	Stdin string
}

// Result is the outcome of a finished command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewCmd returns a new command for the test binary and pointers to its stderr and stdout
func NewCmd(opts RunCmdOptions, binaryName string, arg ...string) (*exec.Cmd, *bytes.Buffer, *bytes.Buffer, error) {
	var stderr, stdout bytes.Buffer

	binaryPath, err := filepath.Abs(binaryName)
	if err != nil {
		return &exec.Cmd{}, &stderr, &stdout, errors.Wrap(err, "getting the absolute path to the test binary")
	}

	cmd := exec.Command(binaryPath, arg...)
	cmd.Stderr = &stderr
	cmd.Stdout = &stdout
	cmd.Env = opts.Env

	if opts.Stdin != "" {
		cmd.Stdin = strings.NewReader(opts.Stdin)
	}

	return cmd, &stderr, &stdout, nil
}

// RunCmd runs a command and returns its output and exit code. A command
// exiting with a non-zero code is not a failure; failing to run it at all is.
func RunCmd(t *testing.T, opts RunCmdOptions, binaryName string, arg ...string) Result {
	t.Logf("running: %s %s", binaryName, strings.Join(arg, " "))

	cmd, stderr, stdout, err := NewCmd(opts, binaryName, arg...)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting command").Error())
	}

	var exitCode int
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatal(errors.Wrapf(err, "running command %s", stderr.String()))
		}

		exitCode = exitErr.ExitCode()
	}

	// Print output if and only if test fails later
	t.Logf("\nstdout:\n%s\nstderr:\n%s", stdout, stderr)

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunCmd runs a command and fails the test if it exits with a non-zero code
func MustRunCmd(t *testing.T, opts RunCmdOptions, binaryName string, arg ...string) string {
	res := RunCmd(t, opts, binaryName, arg...)
	if res.ExitCode != 0 {
		t.Fatalf("command exited with %d: %s", res.ExitCode, res.Stderr)
	}

	return res.Stdout
}

// StartCmd starts a long running command and returns it with a reader for its stdout
func StartCmd(t *testing.T, opts RunCmdOptions, binaryName string, arg ...string) (*exec.Cmd, io.Reader) {
	t.Logf("starting: %s %s", binaryName, strings.Join(arg, " "))

	binaryPath, err := filepath.Abs(binaryName)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting absolute path to test binary"))
	}

	cmd := exec.Command(binaryPath, arg...)
	cmd.Env = opts.Env
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting stdout pipe"))
	}

	if err = cmd.Start(); err != nil {
		t.Fatal(errors.Wrap(err, "starting command"))
	}

	t.Cleanup(func() {
		if cmd.ProcessState == nil {
			cmd.Process.Kill()
			cmd.Wait()
		}
	})

	return cmd, bufio.NewReader(stdout)
}

// waitForOutput waits for the expected text to appear in stdout with a timeout.
// It consumes stdout up to and including the expected text.
func waitForOutput(stdout io.Reader, expected string, timeout time.Duration) error {
	type result struct {
		found bool
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		var buf [1]byte
		var seen strings.Builder

		for {
			if _, err := io.ReadFull(stdout, buf[:]); err != nil {
				resultCh <- result{found: false, err: err}
				return
			}

			seen.WriteByte(buf[0])
			if strings.HasSuffix(seen.String(), expected) {
				resultCh <- result{found: true}
				return
			}
		}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil && res.err != io.EOF {
			return errors.Wrap(res.err, "reading stdout")
		}
		if !res.found {
			return errors.Errorf("expected output '%s' not found in stdout", expected)
		}
		return nil
	case <-time.After(timeout):
		return errors.Errorf("timeout waiting for output '%s'", expected)
	}
}

// MustWaitForOutput waits for the expected output with a default timeout.
// Fails the test if the output is not found or an error occurs.
func MustWaitForOutput(t *testing.T, stdout io.Reader, expected string) {
	if err := waitForOutput(stdout, expected, outputTimeout); err != nil {
		t.Fatal(err)
	}
}

// WriteFile writes a file with the given content in dir and returns its path
func WriteFile(t *testing.T, dir, name, content string) string {
	p := filepath.Join(dir, name)

	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(errors.Wrapf(err, "writing %s", p))
	}

	return p
}
