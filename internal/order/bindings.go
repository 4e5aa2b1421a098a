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
	"slices"
	"strings"

	"fillmore-labs.com/importorder/internal/imports"
)

// FirstUnsorted returns the index of the first binding with a sort key smaller than
// its predecessor's, or -1 when the bindings are sorted.
func FirstUnsorted(bindings []imports.Binding, caseSensitive bool) int {
	for i := 1; i < len(bindings); i++ {
		if bindings[i].SortKey(caseSensitive) < bindings[i-1].SortKey(caseSensitive) {
			return i
		}
	}

	return -1
}

// SortedBindings returns the permutation sorting bindings by sort key. Bindings with
// equal keys keep their relative order.
func SortedBindings(bindings []imports.Binding, caseSensitive bool) []int {
	keys := make([]string, len(bindings))
	for i, b := range bindings {
		keys[i] = b.SortKey(caseSensitive)
	}

	return stableOrder(len(bindings), func(a, b int) int { return strings.Compare(keys[a], keys[b]) })
}

// stableOrder returns the indices 0..n-1 stably sorted by cmp.
func stableOrder(n int, cmp func(a, b int) int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, cmp)

	return order
}
