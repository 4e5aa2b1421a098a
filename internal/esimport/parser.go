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
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"fillmore-labs.com/importorder/internal/imports"
)

var (
	// ErrSyntax is returned for sources with syntax errors in or before the import statements.
	ErrSyntax = errors.New("syntax error")

	errPoolType = errors.New("unexpected parser type in pool")
	errNoRoot   = errors.New("no root node")
)

// Parser parses sources into module-level statements. It is safe for concurrent use.
type Parser struct {
	pools [numLanguages]sync.Pool
}

// NewParser creates a new [Parser].
func NewParser() *Parser {
	p := &Parser{}
	for i := range p.pools {
		lang := grammars[i]
		p.pools[i].New = func() any {
			tsParser := sitter.NewParser()
			tsParser.SetLanguage(lang())

			return tsParser
		}
	}

	return p
}

// Parse returns the module-level statements of src.
func (p *Parser) Parse(ctx context.Context, lang Language, src []byte) ([]imports.Node, error) {
	if !lang.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	tsParser, ok := p.pools[lang].Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}
	defer p.pools[lang].Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s parser: %w", lang, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, errNoRoot
	}

	if root.Type() == "ERROR" {
		return nil, fmt.Errorf("%w: unparsable module", ErrSyntax)
	}

	return statements(root, src)
}

func statements(root sitter.Node, src []byte) ([]imports.Node, error) {
	var lastImport uint // start of the last import statement
	for idx := range root.NamedChildCount() {
		if child := root.NamedChild(idx); child.Type() == "import_statement" {
			lastImport = child.StartByte()
		}
	}

	var (
		nodes []imports.Node
		index int
	)

	for idx := range root.NamedChildCount() {
		child := root.NamedChild(idx)

		node := imports.Node{Index: index, Span: span(child)}

		switch child.Type() {
		case "comment", "hash_bang_line":
			continue

		case "ERROR":
			if child.StartByte() < lastImport || strings.HasPrefix(text(child, src), "import") {
				return nil, fmt.Errorf("%w at %s", ErrSyntax, node.Span)
			}

		case "import_statement":
			if hasError(child) {
				return nil, fmt.Errorf("%w in import statement at %s", ErrSyntax, node.Span)
			}

			if err := importStatement(child, src, &node); err != nil {
				return nil, err
			}
		}

		nodes = append(nodes, node)
		index++
	}

	return nodes, nil
}
