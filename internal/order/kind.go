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

// Kind classifies an ordering violation.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// UnsortedBinding is reported for a named binding sorted before its predecessor.
	UnsortedBinding Kind = iota // unsorted-binding
	// DuplicateModule is reported for a module imported by two adjacent statements.
	DuplicateModule // duplicate-module
	// EmptyImportOutOfOrder is reported for a side-effect import following an import with bindings.
	EmptyImportOutOfOrder // empty-import-order
	// AbsoluteImportOutOfOrder is reported for an absolute import following a relative one.
	AbsoluteImportOutOfOrder // absolute-import-order
	// AlphabeticalOutOfOrder is reported for a module sorted before its predecessor.
	AlphabeticalOutOfOrder // alphabetical-order
)

// Fixable reports whether violations of this kind can be rewritten automatically.
//
// Duplicate imports are never fixed, since only the user can decide which one to keep.
func (k Kind) Fixable() bool { return k != DuplicateModule }
