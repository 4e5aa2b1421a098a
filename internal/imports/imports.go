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

// Package imports classifies module-level statements into import statements.
//
// Front ends report every module-level statement of a source file as a [Node].
// [Classify] selects the import statements and derives the attributes the
// ordering rules depend on.
package imports

import (
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/importorder/internal/source"
)

// ErrMissingModule is returned for an import node without a module identifier.
// Front ends are expected to only report well-formed import statements.
var ErrMissingModule = errors.New("import statement without module identifier")

// Node is a module-level statement as reported by a front end.
type Node struct {
	// Index is the position of the statement among the module-level statements.
	// A front end may skip an index to mark a boundary a rewrite must not cross.
	Index int

	// Span covers the raw text of the statement.
	Span source.Span

	// Import marks import statements. All other fields are only meaningful for imports.
	Import bool

	// Module is the literal module identifier, without quotes.
	Module string

	// SideEffect is set when the statement binds nothing: it has no import clause
	// or only an empty list of named bindings.
	SideEffect bool

	// Bindings are the named bindings in source order.
	Bindings []Binding

	// Delimiters are the separator tokens between bindings; Delimiters[i]
	// lies between Bindings[i] and Bindings[i+1]. Nil when the list has no separators.
	Delimiters []source.Span
}

// Binding is one named identifier introduced by an import statement.
type Binding struct {
	LocalName string
	Span      source.Span
}

// SortKey returns the key bindings are ordered by.
func (b Binding) SortKey(caseSensitive bool) string {
	if caseSensitive {
		return b.LocalName
	}

	return strings.ToLower(b.LocalName)
}

// Statement is the read-only view of an import statement used for ordering.
type Statement struct {
	Index      int
	Span       source.Span
	Module     string
	Absolute   bool
	Empty      bool
	Bindings   []Binding
	Delimiters []source.Span
}

// IsAbsolute reports whether a module identifier is absolute, that is, not relative
// to the importing module.
func IsAbsolute(module string) bool {
	return !strings.HasPrefix(module, ".")
}

// Classify returns the import statements of nodes in source order.
func Classify(nodes []Node) ([]Statement, error) {
	var stmts []Statement

	for _, n := range nodes {
		if !n.Import {
			continue
		}

		if n.Module == "" {
			return nil, fmt.Errorf("statement %d at %s: %w", n.Index, n.Span, ErrMissingModule)
		}

		stmts = append(stmts, Statement{
			Index:      n.Index,
			Span:       n.Span,
			Module:     n.Module,
			Absolute:   IsAbsolute(n.Module),
			Empty:      n.SideEffect,
			Bindings:   n.Bindings,
			Delimiters: n.Delimiters,
		})
	}

	return stmts, nil
}

// Contiguous reports whether no other module-level statement lies between the
// first and the last statement.
func Contiguous(stmts []Statement) bool {
	for i := 1; i < len(stmts); i++ {
		if stmts[i].Index != stmts[i-1].Index+1 {
			return false
		}
	}

	return true
}
