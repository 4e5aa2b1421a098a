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

package splice_test

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/importorder/internal/source"
	. "fillmore-labs.com/importorder/internal/splice"
)

var (
	statementPattern = regexp.MustCompile(`import [^;]*;`)
	bindingPattern   = regexp.MustCompile(`\w+`)
	commaPattern     = regexp.MustCompile(`,`)
)

// statements returns a sequence of all `import ...;` statements in src.
func statements(src string) Sequence {
	var seq Sequence
	for _, m := range statementPattern.FindAllStringIndex(src, -1) {
		seq.Nodes = append(seq.Nodes, source.Span{Start: m[0], End: m[1]})
	}

	return seq
}

// bindings returns a delimited sequence of identifiers in a comma separated list.
func bindings(src string) Sequence {
	var seq Sequence
	for _, m := range bindingPattern.FindAllStringIndex(src, -1) {
		seq.Nodes = append(seq.Nodes, source.Span{Start: m[0], End: m[1]})
	}

	for _, m := range commaPattern.FindAllStringIndex(src, -1) {
		seq.Delimiters = append(seq.Delimiters, source.Span{Start: m[0], End: m[1]})
	}

	return seq
}

func TestSplice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		seq   func(string) Sequence
		order []int
		sep   string
		want  string
	}{
		{
			name:  "Swap",
			src:   "import './b';\nimport './a';",
			seq:   statements,
			order: []int{1, 0},
			sep:   "\n",
			want:  "import './a';\nimport './b';",
		},
		{
			name:  "CommentTravels",
			src:   "import 'x';\n// about a\nimport 'a';",
			seq:   statements,
			order: []int{1, 0},
			sep:   "\n",
			want:  "// about a\nimport 'a';\nimport 'x';",
		},
		{
			name:  "BlankLineTravels",
			src:   "import 'c';\nimport 'b';\n\nimport 'a';",
			seq:   statements,
			order: []int{2, 1, 0},
			sep:   "\n",
			want:  "import 'a';\nimport 'b';\nimport 'c';",
		},
		{
			name:  "MiddleMoves",
			src:   "import 'a';\nimport 'c';\n/* b */\nimport 'b';",
			seq:   statements,
			order: []int{0, 2, 1},
			sep:   "\n",
			want:  "import 'a';\n/* b */\nimport 'b';\nimport 'c';",
		},
		{
			name:  "Bindings",
			src:   "b, a",
			seq:   bindings,
			order: []int{1, 0},
			sep:   " ",
			want:  "a, b",
		},
		{
			name:  "ThreeBindings",
			src:   "c, b, a",
			seq:   bindings,
			order: []int{2, 1, 0},
			sep:   " ",
			want:  "a, b, c",
		},
		{
			name:  "MultilineBindings",
			src:   "b,\n  a",
			seq:   bindings,
			order: []int{1, 0},
			sep:   "\n  ",
			want:  "a,\n  b",
		},
		{
			name:  "BindingTrivia",
			src:   "b /* ~ */, a",
			seq:   bindings,
			order: []int{1, 0},
			sep:   " ",
			want:  "/* ~ */ a, b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := []byte(tt.src)
			seq := tt.seq(tt.src)

			edit, err := Splice(src, seq, tt.order, tt.sep)
			if err != nil {
				t.Fatalf("Splice() failed: %v", err)
			}

			if edit.Span != seq.Span() {
				t.Errorf("Splice() span = %s, want %s", edit.Span, seq.Span())
			}

			if got := edit.NewText; got != tt.want {
				t.Errorf("Splice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpliceIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		seq  func(string) Sequence
	}{
		{"Statements", "import 'a'; // trailing\n\n/* block */ import 'b';\n  import 'c';", statements},
		{"Single", "import 'only';", statements},
		{"Bindings", "a /* - */ ,\n\tb,c", bindings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := []byte(tt.src)
			seq := tt.seq(tt.src)

			order := make([]int, len(seq.Nodes))
			for i := range order {
				order[i] = i
			}

			edit, err := Splice(src, seq, order, "\n")
			if err != nil {
				t.Fatalf("Splice() failed: %v", err)
			}

			if got, want := edit.NewText, strings.TrimSpace(seq.Span().Text(src)); got != want {
				t.Errorf("Identity Splice() = %q, want %q", got, want)
			}
		})
	}
}

func TestSpliceNoLoss(t *testing.T) {
	t.Parallel()

	const text = "import 'd';\n// d\nimport 'b';\n\nimport 'a'; /* a */\nimport 'c';"

	src := []byte(text)
	seq := statements(text)

	order := []int{2, 1, 3, 0}

	edit, err := Splice(src, seq, order, "\n")
	if err != nil {
		t.Fatalf("Splice() failed: %v", err)
	}

	var want []string
	for _, n := range seq.Nodes {
		want = append(want, n.Text(src))
	}

	got := statementPattern.FindAllString(edit.NewText, -1)

	slices.Sort(want)
	slices.Sort(got)

	if !slices.Equal(got, want) {
		t.Errorf("Splice() nodes = %q, want %q", got, want)
	}

	// Every gap is consumed once, the leading gap of 'a' loses its whitespace and 'd' gains a separator.
	gaps := 0
	for i := 1; i < len(seq.Nodes); i++ {
		gaps += seq.Nodes[i-1].Between(seq.Nodes[i]).Len()
	}

	nodes := 0
	for _, n := range seq.Nodes {
		nodes += n.Len()
	}

	leading := len(seq.Nodes[1].Between(seq.Nodes[2]).Text(src)) // "\n\n", trimmed
	if got, want := len(edit.NewText), nodes+gaps-leading+len("\n"); got != want {
		t.Errorf("Splice() length = %d, want %d", got, want)
	}

	for _, comment := range []string{"// d", "/* a */"} {
		if strings.Count(edit.NewText, comment) != 1 {
			t.Errorf("Expected comment %q exactly once in %q", comment, edit.NewText)
		}
	}
}

func TestSpliceErrors(t *testing.T) {
	t.Parallel()

	const text = "import 'b';\nimport 'a';"

	src := []byte(text)

	tests := []struct {
		name  string
		seq   Sequence
		order []int
		want  error
	}{
		{"Short", statements(text), []int{0}, ErrNotPermutation},
		{"Repeated", statements(text), []int{1, 1}, ErrNotPermutation},
		{"OutOfRange", statements(text), []int{0, 2}, ErrNotPermutation},
		{"Empty", Sequence{}, nil, ErrInvalidSequence},
		{
			"Overlap",
			Sequence{Nodes: []source.Span{{Start: 0, End: 11}, {Start: 5, End: 23}}},
			[]int{1, 0},
			ErrInvalidSequence,
		},
		{
			"Delimiter",
			Sequence{Nodes: statements(text).Nodes, Delimiters: []source.Span{{Start: 0, End: 1}}},
			[]int{1, 0},
			ErrInvalidSequence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Splice(src, tt.seq, tt.order, "\n"); !errors.Is(err, tt.want) {
				t.Errorf("Splice() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"Space", "b, a", " "},
		{"Newline", "b,\n    a", "\n    "},
		{"Comment", "b, /* - */ a", "_"},
		{"Tight", "b,a", "_"},
		{"Later", "b, /* - */ a,\n  c", "\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := bindings(tt.src).Separator([]byte(tt.src), "_"); got != tt.want {
				t.Errorf("Separator() = %q, want %q", got, tt.want)
			}
		})
	}
}
