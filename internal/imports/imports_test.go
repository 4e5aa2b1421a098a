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

package imports_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/importorder/internal/imports"
	"fillmore-labs.com/importorder/internal/source"
)

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		module string
		want   bool
	}{
		{"react", true},
		{"@scope/pkg", true},
		{"fmt", true},
		{"/abs/path", true},
		{"./a", false},
		{"../b/c", false},
		{".", false},
	}

	for _, tt := range tests {
		if got := IsAbsolute(tt.module); got != tt.want {
			t.Errorf("IsAbsolute(%q) = %v, want %v", tt.module, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	nodes := []Node{
		{Index: 0, Span: source.Span{Start: 0, End: 13}},
		{Index: 1, Span: source.Span{Start: 14, End: 28}, Import: true, Module: "./x", SideEffect: true},
		{
			Index: 2, Span: source.Span{Start: 29, End: 60}, Import: true, Module: "pkg",
			Bindings: []Binding{{LocalName: "b"}, {LocalName: "a"}},
		},
	}

	stmts, err := Classify(nodes)
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}

	if len(stmts) != 2 {
		t.Fatalf("Classify() returned %d statements, want 2", len(stmts))
	}

	if s := stmts[0]; s.Module != "./x" || s.Absolute || !s.Empty || s.Index != 1 {
		t.Errorf("Got first statement %+v", s)
	}

	if s := stmts[1]; s.Module != "pkg" || !s.Absolute || s.Empty || len(s.Bindings) != 2 {
		t.Errorf("Got second statement %+v", s)
	}

	if !Contiguous(stmts) {
		t.Error("Expected contiguous statements")
	}
}

func TestClassifyMissingModule(t *testing.T) {
	t.Parallel()

	_, err := Classify([]Node{{Import: true}})
	if !errors.Is(err, ErrMissingModule) {
		t.Errorf("Classify() error = %v, want %v", err, ErrMissingModule)
	}
}

func TestContiguous(t *testing.T) {
	t.Parallel()

	stmts := []Statement{{Index: 0}, {Index: 1}, {Index: 3}}
	if Contiguous(stmts) {
		t.Error("Expected statements with a gap to be non-contiguous")
	}
}

func TestSortKey(t *testing.T) {
	t.Parallel()

	b := Binding{LocalName: "MyName"}

	if got, want := b.SortKey(false), "myname"; got != want {
		t.Errorf("SortKey(false) = %q, want %q", got, want)
	}

	if got, want := b.SortKey(true), "MyName"; got != want {
		t.Errorf("SortKey(true) = %q, want %q", got, want)
	}
}
