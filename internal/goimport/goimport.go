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

// Package goimport reports the import declarations of a Go file as module-level statements.
//
// Blank imports are side-effect imports, import paths starting with a dot are
// relative. Go imports have no named bindings.
//
// Only the specs of a single parenthesized declaration are reordered together.
// Specs of different declarations and specs sharing a line are never moved across
// each other.
package goimport

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"fillmore-labs.com/importorder/internal/imports"
	"fillmore-labs.com/importorder/internal/source"
)

// ErrNoFile is returned when the file is not part of the file set.
var ErrNoFile = errors.New("file not found in file set")

// Nodes returns the import specs of file.
func Nodes(fset *token.FileSet, file *ast.File) ([]imports.Node, error) {
	tok := fset.File(file.FileStart)
	if tok == nil {
		return nil, fmt.Errorf("package %s: %w", file.Name.Name, ErrNoFile)
	}

	var (
		nodes []imports.Node
		index int
	)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			break // imports precede all other declarations
		}

		if len(nodes) > 0 {
			index++ // declaration boundary
		}

		prevLine := -1
		for _, spec := range gen.Specs {
			is, ok := spec.(*ast.ImportSpec)
			if !ok {
				continue
			}

			module, err := strconv.Unquote(is.Path.Value)
			if err != nil {
				return nil, fmt.Errorf("import path %s: %w", is.Path.Value, err)
			}

			start, end := is.Pos(), is.End()
			if is.Comment != nil {
				end = is.Comment.End()
			}

			if line := tok.Line(start); line == prevLine {
				index++ // same line
			}

			nodes = append(nodes, imports.Node{
				Index:      index,
				Span:       source.Span{Start: tok.Offset(start), End: tok.Offset(end)},
				Import:     true,
				Module:     module,
				SideEffect: is.Name != nil && is.Name.Name == "_",
			})

			index++
			prevLine = tok.Line(end)
		}
	}

	return nodes, nil
}
