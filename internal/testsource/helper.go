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

// Package testsource provides utilities for turning source fragments into
// module-level statements in tests.
//
// [Module] understands a small subset of ECMAScript: import statements with an
// optional default binding and a braced list of named bindings, comments and other
// statements terminated by a semicolon. [ParseFile] parses Go source code.
package testsource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
	"testing"

	"fillmore-labs.com/importorder/internal/imports"
	"fillmore-labs.com/importorder/internal/source"
)

var (
	statementPattern = regexp.MustCompile(
		`(?s)//[^\n]*|/\*.*?\*/|import\s*(?:([^'"]*?)\s*from\s*)?['"]([^'"]*)['"]\s*;|[^\s;][^;]*;`)
	bindingPattern = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*|,|(\w+)(?:\s+as\s+(\w+))?`)
)

// Module returns the module-level statements of an ECMAScript source fragment.
func Module(tb testing.TB, src string) []imports.Node {
	tb.Helper()

	var (
		nodes []imports.Node
		index int
	)

	for _, m := range statementPattern.FindAllStringSubmatchIndex(src, -1) {
		text := src[m[0]:m[1]]
		if text[0] == '/' && (text[1] == '/' || text[1] == '*') {
			continue // comment
		}

		node := imports.Node{Index: index, Span: source.Span{Start: m[0], End: m[1]}}
		index++

		if m[4] >= 0 {
			node.Import = true
			node.Module = src[m[4]:m[5]]
			if m[2] >= 0 {
				node.Bindings, node.Delimiters = namedBindings(tb, src, m[2], m[3])
			}

			node.SideEffect = m[2] < 0 || strings.Trim(src[m[2]:m[3]], "{} \t\n") == ""
		}

		nodes = append(nodes, node)
	}

	return nodes
}

// namedBindings returns the bindings between braces in src[start:end].
func namedBindings(tb testing.TB, src string, start, end int) ([]imports.Binding, []source.Span) {
	tb.Helper()

	open := start
	for open < end && src[open] != '{' {
		open++
	}

	if open == end {
		return nil, nil
	}

	closing := end - 1
	for closing > open && src[closing] != '}' {
		closing--
	}

	if closing == open {
		tb.Fatalf("Unterminated bindings in %q", src[start:end])
	}

	var (
		bindings   []imports.Binding
		delimiters []source.Span
	)

	base := open + 1
	for _, m := range bindingPattern.FindAllStringSubmatchIndex(src[base:closing], -1) {
		switch {
		case m[2] >= 0:
			name := src[base+m[2] : base+m[3]]
			if m[4] >= 0 {
				name = src[base+m[4] : base+m[5]]
			}

			bindings = append(bindings, imports.Binding{
				LocalName: name,
				Span:      source.Span{Start: base + m[0], End: base + m[1]},
			})

		case src[base+m[0]] == ',':
			delimiters = append(delimiters, source.Span{Start: base + m[0], End: base + m[1]})
		}
	}

	if len(delimiters) >= len(bindings) && len(bindings) > 0 {
		delimiters = delimiters[:len(bindings)-1] // trailing comma
	}

	return bindings, delimiters
}

// ParseFile parses a complete Go source file.
func ParseFile(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}
