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

// Package splice reorders a sequence of nodes in a source text while keeping the
// text between them.
//
// # Gaps
//
// The text between two consecutive nodes of the original sequence is a gap. When a
// node is moved, the gap that preceded it in the original sequence moves with it,
// so comments and blank lines are neither dropped nor duplicated.
//
// Given the statements
//
//	import './b';
//	// about a
//	import './a';
//
// the reordered text is
//
//	// about a
//	import './a';
//	import './b';
//
// A node that was first and is moved behind another node has no gap of its own and
// is preceded by a synthetic separator.
//
// # Delimited Lists
//
// Nodes of a delimited list, like named bindings `{ b, a }`, carry the delimiter
// token of each gap. Delimiters stay between list elements: a node moved to the
// front loses the delimiter of its gap, the node that was first gains one.
package splice

import (
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/importorder/internal/source"
)

var (
	// ErrNotPermutation is returned when the target order is not a permutation of the original sequence.
	ErrNotPermutation = errors.New("target order is not a permutation")

	// ErrInvalidSequence is returned for empty, overlapping or unordered node spans,
	// or for delimiters outside their gaps.
	ErrInvalidSequence = errors.New("invalid node sequence")
)

// Sequence is the original, source ordered sequence of nodes.
type Sequence struct {
	// Nodes are the spans of the nodes in source order.
	Nodes []source.Span

	// Delimiters are optional; Delimiters[i] lies in the gap between Nodes[i] and Nodes[i+1].
	Delimiters []source.Span
}

// Span returns the span from the start of the first to the end of the last node.
func (s Sequence) Span() source.Span {
	return source.Span{Start: s.Nodes[0].Start, End: s.Nodes[len(s.Nodes)-1].End}
}

// Splice returns an edit replacing the span of seq with its nodes in target order.
//
// order[i] is the index into seq.Nodes of the node at target position i. separator
// precedes the originally first node when it is not first in the target order.
func Splice(src []byte, seq Sequence, order []int, separator string) (source.Edit, error) {
	if err := seq.validate(len(src)); err != nil {
		return source.Edit{}, err
	}

	if err := checkPermutation(order, len(seq.Nodes)); err != nil {
		return source.Edit{}, err
	}

	var buf strings.Builder

	buf.Grow(seq.Span().Len() + len(separator))

	for i, old := range order {
		switch {
		case old > 0 && i > 0:
			buf.Write(src[seq.Nodes[old-1].End:seq.Nodes[old].Start]) // ignore error

		case old > 0: // moved to the front
			buf.WriteString(seq.trivia(src, old)) // ignore error

		case i > 0: // formerly first
			if d := seq.delimiter(src, order[0]); d != "" {
				buf.WriteString(d) // ignore error
			}

			buf.WriteString(separator) // ignore error
		}

		buf.Write(src[seq.Nodes[old].Start:seq.Nodes[old].End]) // ignore error
	}

	return source.Edit{Span: seq.Span(), NewText: strings.TrimSpace(buf.String())}, nil
}

// Separator returns the whitespace between the first delimiter followed only by
// whitespace and the next node, or fallback when there is none.
func (s Sequence) Separator(src []byte, fallback string) string {
	for i, d := range s.Delimiters {
		ws := src[d.End:s.Nodes[i+1].Start]
		if len(ws) != 0 && len(strings.TrimSpace(string(ws))) == 0 {
			return string(ws)
		}
	}

	return fallback
}

// trivia returns the gap before node i without its delimiter.
func (s Sequence) trivia(src []byte, i int) string {
	gap := s.Nodes[i-1].Between(s.Nodes[i])
	if len(s.Delimiters) == 0 {
		return gap.Text(src)
	}

	d := s.Delimiters[i-1]

	return string(src[gap.Start:d.Start]) + string(src[d.End:gap.End])
}

// delimiter returns the delimiter text of the gap before node i.
func (s Sequence) delimiter(src []byte, i int) string {
	if len(s.Delimiters) == 0 {
		return ""
	}

	if i == 0 {
		i = 1
	}

	return s.Delimiters[i-1].Text(src)
}

func (s Sequence) validate(size int) error {
	n := len(s.Nodes)
	if n == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidSequence)
	}

	if len(s.Delimiters) != 0 && len(s.Delimiters) != n-1 {
		return fmt.Errorf("%w: %d delimiters for %d nodes", ErrInvalidSequence, len(s.Delimiters), n)
	}

	for i, node := range s.Nodes {
		if !node.Valid() || node.End > size {
			return fmt.Errorf("%w: node %d at %s", ErrInvalidSequence, i, node)
		}

		if i == 0 {
			continue
		}

		gap := s.Nodes[i-1].Between(node)
		if !gap.Valid() {
			return fmt.Errorf("%w: node %d at %s overlaps its predecessor", ErrInvalidSequence, i, node)
		}

		if len(s.Delimiters) != 0 {
			if d := s.Delimiters[i-1]; !d.Valid() || !gap.Contains(d) {
				return fmt.Errorf("%w: delimiter %d at %s outside of gap %s", ErrInvalidSequence, i-1, d, gap)
			}
		}
	}

	return nil
}

func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: %d positions for %d nodes", ErrNotPermutation, len(order), n)
	}

	seen := make([]bool, n)
	for i, old := range order {
		if old < 0 || old >= n || seen[old] {
			return fmt.Errorf("%w: invalid index %d at position %d", ErrNotPermutation, old, i)
		}

		seen[old] = true
	}

	return nil
}
