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

// Package lint checks and fixes the import order of JavaScript and TypeScript files.
package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/importorder/internal/esimport"
	"fillmore-labs.com/importorder/internal/rule"
	"fillmore-labs.com/importorder/internal/source"
)

// MaxFixPasses limits the number of rewrites applied to a single file.
const MaxFixPasses = 10

// ErrViolations is returned when import order violations remain.
var ErrViolations = errors.New("import order violations found")

// Linter checks source files.
type Linter struct {
	Parser  *esimport.Parser
	Options rule.Options

	// Fix writes fixed sources back to their files.
	Fix bool

	// Workers limits the number of files processed in parallel, zero means GOMAXPROCS.
	Workers int

	Logger *slog.Logger
}

// Result is the outcome of checking a single file.
type Result struct {
	Path string

	// Source is the original content, Fixed the content with all rewrites applied.
	Source, Fixed []byte

	// Violations are found in Source, Remaining in Fixed.
	Violations, Remaining []rule.Violation

	// Err is set when the file could not be checked.
	Err error
}

// Changed reports whether fixing the file changes its content.
func (r Result) Changed() bool { return !bytes.Equal(r.Source, r.Fixed) }

// New creates a [Linter] with default options.
func New() *Linter {
	return &Linter{
		Parser:  esimport.NewParser(),
		Options: rule.DefaultOptions(),
		Logger:  slog.Default(),
	}
}

// Source checks src and computes the fixed source.
func (l *Linter) Source(ctx context.Context, path string, src []byte) (Result, error) {
	lang, err := esimport.LanguageFor(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: path, Source: src, Fixed: src}

	res.Violations, err = l.analyze(ctx, lang, src)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	res.Remaining = res.Violations

	for pass := 1; pass <= MaxFixPasses; pass++ {
		edits := rewrites(res.Remaining)
		if len(edits) == 0 {
			break
		}

		fixed, applied, skipped := source.Apply(res.Fixed, edits)
		l.Logger.LogAttrs(ctx, slog.LevelDebug, "Fix pass",
			slog.String("path", path), slog.Int("pass", pass),
			slog.Int("applied", applied), slog.Int("skipped", skipped))

		if bytes.Equal(fixed, res.Fixed) {
			break
		}

		res.Fixed = fixed

		res.Remaining, err = l.analyze(ctx, lang, fixed)
		if err != nil {
			return Result{}, fmt.Errorf("%s: after fix pass %d: %w", path, pass, err)
		}
	}

	return res, nil
}

func (l *Linter) analyze(ctx context.Context, lang esimport.Language, src []byte) ([]rule.Violation, error) {
	nodes, err := l.Parser.Parse(ctx, lang, src)
	if err != nil {
		return nil, err
	}

	return rule.Analyze(src, nodes, l.Options)
}

func rewrites(violations []rule.Violation) []source.Edit {
	var edits []source.Edit

	for _, v := range violations {
		if v.Rewrite != nil {
			edits = append(edits, *v.Rewrite)
		}
	}

	return edits
}

// Run checks files in parallel and returns the results in the order of paths.
//
// Files that can not be read or parsed have their Err set. When Fix is enabled,
// changed files are written back.
func (l *Linter) Run(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	jobs := l.Workers
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = l.file(gctx, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

func (l *Linter) file(ctx context.Context, path string) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	res, err := l.Source(ctx, path, src)
	if err != nil {
		return Result{Path: path, Source: src, Fixed: src, Err: err}
	}

	if !l.Fix || !res.Changed() {
		return res
	}

	info, err := os.Stat(path)
	if err != nil {
		res.Err = err

		return res
	}

	if err := os.WriteFile(path, res.Fixed, info.Mode().Perm()); err != nil {
		res.Err = fmt.Errorf("write fixed file: %w", err)

		return res
	}

	l.Logger.LogAttrs(ctx, slog.LevelInfo, "Fixed imports", slog.String("path", path))

	return res
}
