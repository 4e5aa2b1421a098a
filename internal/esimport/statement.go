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

package esimport

import (
	"fmt"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"fillmore-labs.com/importorder/internal/imports"
	"fillmore-labs.com/importorder/internal/source"
)

// importStatement fills node from an import_statement.
func importStatement(n sitter.Node, src []byte, node *imports.Node) error {
	var clause, require sitter.Node

	for idx := range n.NamedChildCount() {
		switch child := n.NamedChild(idx); child.Type() {
		case "import_clause":
			clause = child

		case "import_require_clause": // TypeScript import x = require('y')
			require = child
		}
	}

	specifier := n.ChildByFieldName("source")
	if specifier.IsNull() && !require.IsNull() {
		specifier = require.ChildByFieldName("source")
	}

	if specifier.IsNull() {
		return fmt.Errorf("%w: import statement at %s without module specifier", ErrSyntax, node.Span)
	}

	node.Import = true
	node.Module = unquote(text(specifier, src))

	if clause.IsNull() {
		node.SideEffect = require.IsNull()

		return nil
	}

	binds := false // default or namespace binding
	for idx := range clause.NamedChildCount() {
		switch child := clause.NamedChild(idx); child.Type() {
		case "named_imports":
			node.Bindings, node.Delimiters = namedImports(child, src)

		case "comment":

		default:
			binds = true
		}
	}

	// import {} from 'x' binds nothing.
	node.SideEffect = !binds && len(node.Bindings) == 0

	return nil
}

// namedImports returns the specifiers of a named_imports node and the commas between them.
func namedImports(n sitter.Node, src []byte) ([]imports.Binding, []source.Span) {
	var (
		bindings   []imports.Binding
		delimiters []source.Span
	)

	for idx := range n.ChildCount() {
		child := n.Child(idx)

		switch {
		case child.Type() == "import_specifier":
			name := child.ChildByFieldName("alias")
			if name.IsNull() {
				name = child.ChildByFieldName("name")
			}

			bindings = append(bindings, imports.Binding{LocalName: text(name, src), Span: span(child)})

		case !child.IsNamed() && child.Type() == ",":
			delimiters = append(delimiters, span(child))
		}
	}

	if len(bindings) > 0 && len(delimiters) >= len(bindings) {
		delimiters = delimiters[:len(bindings)-1] // trailing comma
	}

	return bindings, delimiters
}

func hasError(n sitter.Node) bool {
	if n.Type() == "ERROR" {
		return true
	}

	for idx := range n.ChildCount() {
		if hasError(n.Child(idx)) {
			return true
		}
	}

	return false
}

func span(n sitter.Node) source.Span {
	return source.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func text(n sitter.Node, src []byte) string {
	if n.IsNull() {
		return ""
	}

	return span(n).Text(src)
}

// unquote removes the quotes of a string literal.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}

	return s
}
