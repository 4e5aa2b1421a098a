// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package run implements the importorder analysis pass over Go packages.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/importorder/internal/astutil"
	"fillmore-labs.com/importorder/internal/config"
	"fillmore-labs.com/importorder/internal/goimport"
	"fillmore-labs.com/importorder/internal/report"
	"fillmore-labs.com/importorder/internal/rule"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the importorder analyzer on all files of a package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("importorder: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ImportOrder")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	opts := config.RuleOptions(r.Behavior)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		if len(file.Imports) < 2 {
			continue
		}

		checkFile(ctx, p, currentFile, file, opts)
	}

	return nil, nil
}

func checkFile(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, file *ast.File, opts rule.Options) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	src, err := p.ReadFile(currentFile.Name())
	if err != nil {
		astutil.InternalError(p, file, "Can't read file %s: %v", currentFile.Name(), err)

		return
	}

	if len(src) != currentFile.Size() {
		astutil.InternalError(p, file, "File %s changed size from %d to %d", currentFile.Name(), currentFile.Size(), len(src))

		return
	}

	nodes, err := goimport.Nodes(p.Fset, file)
	if err != nil {
		astutil.InternalError(p, file, "Can't collect imports: %v", err)

		return
	}

	violations, err := rule.Analyze(src, nodes, opts)
	if err != nil {
		astutil.InternalError(p, file, "Can't check imports: %v", err)

		return
	}

	report.Violations(ctx, p, currentFile, violations)
}
