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
	"slices"
)

// Lines maps byte offsets of a source text to 1-based line and column numbers.
type Lines struct {
	starts []int // offsets of line starts
}

// NewLines indexes the line starts of src.
func NewLines(src []byte) Lines {
	starts := make([]int, 1, bytes.Count(src, []byte{'\n'})+1)

	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}

	return Lines{starts: starts}
}

// Position returns the 1-based line and byte column of offset.
func (l Lines) Position(offset int) (line, column int) {
	i, found := slices.BinarySearch(l.starts, offset)
	if !found {
		i--
	}

	return i + 1, offset - l.starts[i] + 1
}

// Indentation returns the blanks between the start of the line and offset, or the
// empty string when other text precedes offset on its line.
func Indentation(src []byte, offset int) string {
	i := offset
	for i > 0 && (src[i-1] == ' ' || src[i-1] == '\t') {
		i--
	}

	if i > 0 && src[i-1] != '\n' {
		return ""
	}

	return string(src[i:offset])
}
