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

// Package rule checks the import statements of a module and offers rewrites for
// violations of the import order.
package rule

import (
	"fmt"
	"log/slog"

	"fillmore-labs.com/importorder/internal/imports"
	"fillmore-labs.com/importorder/internal/order"
	"fillmore-labs.com/importorder/internal/source"
	"fillmore-labs.com/importorder/internal/splice"
)

// Options configure the import order rule.
type Options struct {
	// SortMembers enables checking the order of named bindings.
	SortMembers bool

	// CaseSensitive compares binding names without folding case.
	CaseSensitive bool
}

// DefaultOptions returns the default rule options.
func DefaultOptions() Options {
	return Options{SortMembers: true}
}

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("sort-members", o.SortMembers),
		slog.Bool("case-sensitive", o.CaseSensitive),
	)
}

// Violation is a single import order violation.
type Violation struct {
	Kind    order.Kind
	Span    source.Span
	Message string

	// Rewrite fixes the violation, nil when no automatic fix is possible.
	Rewrite *source.Edit
}

// Analyze checks the module-level statements of src.
//
// Violations of binding order are returned first, one per statement in source order,
// followed by violations of statement order, one per adjacent pair.
func Analyze(src []byte, nodes []imports.Node, opts Options) ([]Violation, error) {
	stmts, err := imports.Classify(nodes)
	if err != nil {
		return nil, err
	}

	var violations []Violation

	if opts.SortMembers {
		for _, stmt := range stmts {
			v, ok, err := checkBindings(src, stmt, opts.CaseSensitive)
			if err != nil {
				return nil, err
			}

			if ok {
				violations = append(violations, v)
			}
		}
	}

	decl, err := checkDeclarations(src, stmts)
	if err != nil {
		return nil, err
	}

	return append(violations, decl...), nil
}

func checkBindings(src []byte, stmt imports.Statement, caseSensitive bool) (Violation, bool, error) {
	i := order.FirstUnsorted(stmt.Bindings, caseSensitive)
	if i < 0 {
		return Violation{}, false, nil
	}

	seq := splice.Sequence{Nodes: make([]source.Span, len(stmt.Bindings)), Delimiters: stmt.Delimiters}
	for j, b := range stmt.Bindings {
		seq.Nodes[j] = b.Span
	}

	edit, err := splice.Splice(src, seq, order.SortedBindings(stmt.Bindings, caseSensitive), seq.Separator(src, " "))
	if err != nil {
		return Violation{}, false, fmt.Errorf("can't sort bindings of %q: %w", stmt.Module, err)
	}

	curr, prev := stmt.Bindings[i], stmt.Bindings[i-1]

	return Violation{
		Kind:    order.UnsortedBinding,
		Span:    curr.Span,
		Message: fmt.Sprintf("Imported member %q should be sorted before %q", curr.LocalName, prev.LocalName),
		Rewrite: &edit,
	}, true, nil
}

func checkDeclarations(src []byte, stmts []imports.Statement) ([]Violation, error) {
	findings := order.Check(stmts)
	if len(findings) == 0 {
		return nil, nil
	}

	rewrite, err := blockRewrite(src, stmts, findings)
	if err != nil {
		return nil, err
	}

	violations := make([]Violation, 0, len(findings))

	for _, f := range findings {
		prev, curr := stmts[f.Index-1], stmts[f.Index]

		v := Violation{Kind: f.Kind, Span: curr.Span, Message: message(f.Kind, prev, curr)}
		if f.Kind.Fixable() {
			v.Rewrite = rewrite
		}

		violations = append(violations, v)
	}

	return violations, nil
}

// blockRewrite returns the edit sorting the whole import block, or nil when no
// finding is fixable or other statements are interleaved with the imports.
func blockRewrite(src []byte, stmts []imports.Statement, findings []order.Finding) (*source.Edit, error) {
	fixable := false
	for _, f := range findings {
		if f.Kind.Fixable() {
			fixable = true
			break
		}
	}

	if !fixable || !imports.Contiguous(stmts) {
		return nil, nil
	}

	seq := splice.Sequence{Nodes: make([]source.Span, len(stmts))}
	for i, s := range stmts {
		seq.Nodes[i] = s.Span
	}

	separator := "\n" + source.Indentation(src, seq.Nodes[0].Start)

	edit, err := splice.Splice(src, seq, order.TargetOrder(stmts), separator)
	if err != nil {
		return nil, fmt.Errorf("can't sort import statements: %w", err)
	}

	return &edit, nil
}

func message(kind order.Kind, prev, curr imports.Statement) string {
	switch kind {
	case order.DuplicateModule:
		return fmt.Sprintf("Module %q is already imported", curr.Module)

	case order.EmptyImportOutOfOrder:
		return fmt.Sprintf("Side-effect import of %q should come before import of %q", curr.Module, prev.Module)

	case order.AbsoluteImportOutOfOrder:
		return fmt.Sprintf("Absolute import of %q should come before relative import of %q", curr.Module, prev.Module)

	case order.AlphabeticalOutOfOrder:
		return fmt.Sprintf("Import of %q should come before import of %q", curr.Module, prev.Module)

	default:
		return fmt.Sprintf("Import of %q is out of order (%s)", curr.Module, kind)
	}
}
