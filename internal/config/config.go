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

// Package config holds the configuration of the import order checks.
package config

import "fillmore-labs.com/importorder/internal/rule"

// Flags represents behavioral options.
type Flags uint8

const (
	// SortMembers enables checking the order of named bindings.
	SortMembers Flags = 1 << iota

	// CaseSensitive compares binding names without folding case.
	CaseSensitive

	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Flags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(SortMembers)
}

// RuleOptions returns the options of the import order rule.
func RuleOptions(b Behavior) rule.Options {
	return rule.Options{
		SortMembers:   b.Enabled(SortMembers),
		CaseSensitive: b.Enabled(CaseSensitive),
	}
}
