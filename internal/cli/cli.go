// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the esimportorder command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/importorder/internal/config"
	"fillmore-labs.com/importorder/internal/esimport"
	"fillmore-labs.com/importorder/internal/lint"
)

// Exit codes of [Execute].
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitError      = 2
)

// ErrCheckFailed is returned when some files could not be checked.
var ErrCheckFailed = errors.New("some files could not be checked")

const name = "esimportorder"

type options struct {
	configFile string
	fix        bool
	diff       bool
	noColor    bool
	verbose    bool
}

// Execute runs the command with args and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}

	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return ExitOK

	case errors.Is(err, lint.ErrViolations):
		return ExitViolations

	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

		return ExitError
	}
}

// NewRootCommand creates the esimportorder command.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   name + " [flags] PATH...",
		Short: "Check the order of JavaScript and TypeScript imports",
		Long: `esimportorder checks that imports are sorted.

Side-effect imports come first, followed by imports of absolute modules and
relative imports. Within each group, imports are sorted by module. Named
bindings of an import are sorted by name.

Directories are searched recursively, hidden directories and excluded
directories are skipped.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file (default is .importorder.yaml in the current or home directory)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	pf.Bool("sort-members", true, "check the order of named bindings")
	pf.Bool("case-sensitive", false, "compare binding names case sensitive")
	pf.Int("workers", 0, "number of files checked in parallel (0 uses all CPUs)")
	pf.StringSlice("exclude", nil, "directory names to skip (default node_modules,vendor)")

	f := cmd.Flags()
	f.BoolVar(&o.fix, "fix", false, "rewrite files in place")
	f.BoolVar(&o.diff, "diff", false, "print a diff of the fixes")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newVersionCommand(), newConfigCommand(&o))

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	settings, err := config.Load(o.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	files, err := lint.FindSourceFiles(args, settings.Exclude)
	if err != nil {
		return err
	}

	l := &lint.Linter{
		Parser:  esimport.NewParser(),
		Options: config.RuleOptions(settings.Behavior()),
		Fix:     o.fix,
		Workers: settings.Workers,
		Logger:  logger,
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Checking files",
		slog.Int("files", len(files)), slog.Any("options", l.Options), slog.Bool("fix", o.fix))

	results, err := l.Run(ctx, files)
	if err != nil {
		return err
	}

	return o.report(ctx, logger, newPrinter(cmd.OutOrStdout(), o.noColor), results)
}

func (o *options) report(ctx context.Context, logger *slog.Logger, p *printer, results []lint.Result) error {
	var violations, fixed, failed int

	for _, res := range results {
		if res.Err != nil {
			p.failure(res.Path, res.Err)
			failed++

			continue
		}

		src, vs := res.Source, res.Violations
		if o.fix {
			src, vs = res.Fixed, res.Remaining
		}

		p.violations(res.Path, src, vs)
		violations += len(vs)

		if res.Changed() {
			fixed++

			if o.diff {
				p.diff(res.Path, res.Source, res.Fixed)
			}
		}
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Checked files",
		slog.Int("files", len(results)), slog.Int("violations", violations),
		slog.Int("fixable", fixed), slog.Int("failed", failed))

	switch {
	case failed > 0:
		return fmt.Errorf("%w: %d of %d", ErrCheckFailed, failed, len(results))

	case violations > 0:
		return lint.ErrViolations

	default:
		return nil
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newConfigCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(o.configFile, cmd.Flags())
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(settings); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			return enc.Close()
		},
	}
}
