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

package source

import (
	"bytes"
	"cmp"
	"slices"
)

// Edit replaces the text covered by Span with NewText.
type Edit struct {
	Span    Span
	NewText string
}

// Apply applies edits to src and returns the result together with the number of
// applied and skipped edits.
//
// Edits are applied in order of their start offset. Identical edits are coalesced,
// an edit overlapping an already accepted edit is skipped. src is not modified.
func Apply(src []byte, edits []Edit) (out []byte, applied, skipped int) {
	if len(edits) == 0 {
		return slices.Clone(src), 0, 0
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
			return c
		}

		return cmp.Compare(a.Span.End, b.Span.End)
	})

	var (
		buf  bytes.Buffer
		last = -1 // index of the last accepted edit in sorted
		pos  int
	)

	buf.Grow(len(src))

	for i, e := range sorted {
		if !e.Span.Valid() || e.Span.End > len(src) {
			skipped++
			continue
		}

		if last >= 0 {
			prev := sorted[last]
			if prev == e {
				continue // duplicate
			}

			if e.Span.Start < prev.Span.End || (e.Span.Start == prev.Span.Start && prev.Span.Len() == 0) {
				skipped++
				continue
			}
		}

		buf.Write(src[pos:e.Span.Start]) // ignore error
		buf.WriteString(e.NewText)       // ignore error
		pos = e.Span.End
		last = i
		applied++
	}

	buf.Write(src[pos:]) // ignore error

	return buf.Bytes(), applied, skipped
}
