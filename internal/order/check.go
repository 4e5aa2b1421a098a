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

package order

import (
	"cmp"
	"strings"

	"fillmore-labs.com/importorder/internal/imports"
)

// Finding is a violation between the statement at Index and its predecessor.
type Finding struct {
	Kind  Kind
	Index int
}

// Check compares each statement with its predecessor and returns at most one
// finding per pair, in source order.
func Check(stmts []imports.Statement) []Finding {
	var findings []Finding

	for i := 1; i < len(stmts); i++ {
		if kind, ok := compare(stmts[i-1], stmts[i]); ok {
			findings = append(findings, Finding{Kind: kind, Index: i})
		}
	}

	return findings
}

// compare applies the ordering rules to an adjacent pair, first match wins.
func compare(prev, current imports.Statement) (Kind, bool) {
	switch {
	case prev.Module == current.Module:
		return DuplicateModule, true

	case prev.Empty && !current.Empty, prev.Absolute && !current.Absolute:
		return 0, false

	case !prev.Empty && current.Empty:
		return EmptyImportOutOfOrder, true

	case !prev.Absolute && current.Absolute:
		return AbsoluteImportOutOfOrder, true

	case current.Module < prev.Module:
		return AlphabeticalOutOfOrder, true

	default:
		return 0, false
	}
}

// TargetOrder returns the permutation of stmts sorting side-effect imports first, then
// absolute before relative imports, then by module identifier. Statements with equal
// keys, like duplicates, keep their relative order.
func TargetOrder(stmts []imports.Statement) []int {
	return stableOrder(len(stmts), func(a, b int) int {
		sa, sb := stmts[a], stmts[b]

		if c := cmp.Compare(rank(sa), rank(sb)); c != 0 {
			return c
		}

		return strings.Compare(sa.Module, sb.Module)
	})
}

func rank(s imports.Statement) int {
	r := 0
	if !s.Empty {
		r += 2
	}

	if !s.Absolute {
		r++
	}

	return r
}
