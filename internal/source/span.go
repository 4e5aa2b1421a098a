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

import "fmt"

// Span is a half-open byte range [Start, End) in a source text.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Valid reports whether the span is well-formed.
func (s Span) Valid() bool { return 0 <= s.Start && s.Start <= s.End }

// Text returns the text of src covered by the span.
func (s Span) Text(src []byte) string { return string(src[s.Start:s.End]) }

// Contains reports whether o lies completely inside s.
func (s Span) Contains(o Span) bool { return s.Start <= o.Start && o.End <= s.End }

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool { return s.Start < o.End && o.Start < s.End }

// Between returns the span from the end of s to the start of o.
func (s Span) Between(o Span) Span { return Span{Start: s.End, End: o.Start} }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }
