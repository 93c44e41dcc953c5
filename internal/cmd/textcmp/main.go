// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// textcmp compares two files and prints how they differ.
//
// Usage:
//
//	textcmp [flags] FILE1 FILE2
//
// Either file can be "-" to read it from standard input. The comparison mode (text, json, xml, or
// code) is selected with --mode. Results are printed as a unified diff by default, --side-by-side
// prints plain text comparisons in two columns, and --output json or --output yaml prints the full
// result wrapped in a response envelope:
//
//	status: SUCCESS
//	data:
//	  identical: false
//	  ...
//
// Settings can also be provided in $XDG_CONFIG_HOME/textcmp/config.yaml (or the file given with
// --config) and in TEXTCMP_* environment variables, e.g., TEXTCMP_IGNORE_CASE=true. Flags take
// precedence over the environment, which takes precedence over the config file.
//
// The exit status is 0 if the inputs are identical, 1 if they differ, and 2 if they couldn't be
// compared.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"znkr.io/textcmp"
)

const (
	exitIdentical = 0
	exitDifferent = 1
	exitError     = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	v              *viper.Viper
	exit           int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, v: viper.New()}
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	return a.exit
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textcmp [flags] FILE1 FILE2",
		Short: "Compare two files",
		Long: `textcmp compares two files line by line, structurally as JSON, or as source code
ignoring comments. Lines are compared by position.

Examples:
  textcmp old.txt new.txt
  textcmp --mode json -o yaml before.json after.json
  textcmp --side-by-side -i a.txt b.txt
  curl -s https://example.com/config.json | textcmp --mode json - local.json`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(a.v, cmd.Flags())
			if err != nil {
				return err
			}
			return a.compare(s, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.String("mode", "text", "comparison `mode`: text, json, xml, or code")
	f.IntP("context", "U", 3, "number of unchanged `lines` around changes")
	f.BoolP("ignore-case", "i", false, "ignore differences in case")
	f.BoolP("ignore-whitespace", "w", false, "collapse all whitespace, including line breaks")
	f.Bool("ignore-line-endings", false, `treat "\r\n" and "\r" like "\n"`)
	f.Bool("allow-empty", false, "accept empty or blank inputs")
	f.Bool("basic", false, "only report whether the inputs are identical")
	f.StringP("output", "o", "text", "output `format`: text, json, or yaml")
	f.Bool("side-by-side", false, "print text comparisons in two columns")
	f.String("color", "auto", "colorize the output: auto, always, or never")
	f.String("config", "", "read settings from `file`")
	f.BoolP("verbose", "v", false, "log progress to stderr")
	return cmd
}

func (a *app) compare(s settings, path1, path2 string) error {
	out := newPrinter(a.stdout, s)
	x, err := a.read(path1)
	if err != nil {
		return a.fail(out, err)
	}
	y, err := a.read(path2)
	if err != nil {
		return a.fail(out, err)
	}
	if !s.AllowEmpty {
		if err := textcmp.Validate(x, y); err != nil {
			return a.fail(out, err)
		}
	}

	engine := textcmp.New(newLogger(a.stderr, s.Verbose))
	if s.Basic {
		b := engine.CompareBasic(x, y)
		a.exit = exitCode(b.Identical)
		return out.basic(b)
	}

	res, err := engine.Compare(x, y, s.mode, s.options()...)
	if err != nil {
		return a.fail(out, err)
	}
	if r, ok := res.(*textcmp.JSONResult); ok && r.Err != nil {
		a.exit = exitError
		if out.structured() {
			return out.success(res)
		}
		return fmt.Errorf("%s", r.Error)
	}
	a.exit = exitCode(res.IsIdentical())
	return out.result(res)
}

// fail reports err in the response envelope for structured output. Otherwise, it's returned to be
// printed on stderr.
func (a *app) fail(out *printer, err error) error {
	if !out.structured() {
		return err
	}
	a.exit = exitError
	return out.failure(err)
}

func (a *app) read(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %v", path, err)
	}
	return string(data), nil
}

func exitCode(identical bool) int {
	if identical {
		return exitIdentical
	}
	return exitDifferent
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
