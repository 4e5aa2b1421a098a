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

// Package report converts import order violations into analysis diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/importorder/internal/astutil"
	"fillmore-labs.com/importorder/internal/rule"
	"fillmore-labs.com/importorder/internal/source"
)

// fixMessage describes the suggested fixes.
const fixMessage = "Sort imports"

// Violations emits a diagnostic for each violation not suppressed by a nolint comment.
//
// Violations fixed by sorting the whole import block share an identical text edit.
func Violations(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, violations []rule.Violation) {
	defer trace.StartRegion(ctx, "ReportViolations").End()

	for _, v := range violations {
		pos, end := currentFile.Pos(v.Span.Start), currentFile.Pos(v.Span.End)

		if currentFile.NoLintComment(pos) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      pos,
			End:      end,
			Category: v.Kind.String(),
			Message:  v.Message,
		}

		if v.Rewrite != nil {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   fixMessage,
				TextEdits: []analysis.TextEdit{textEdit(currentFile, *v.Rewrite)},
			}}
		}

		p.Report(diagnostic)
	}
}

// textEdit converts an edit in file offsets to an [analysis.TextEdit].
func textEdit(currentFile astutil.CurrentFile, e source.Edit) analysis.TextEdit {
	return analysis.TextEdit{
		Pos:     currentFile.Pos(e.Span.Start),
		End:     currentFile.Pos(e.Span.End),
		NewText: []byte(e.NewText),
	}
}
