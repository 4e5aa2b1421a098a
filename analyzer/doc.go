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

// Package analyzer implements the importorder static analysis pass.
//
// # Overview
//
// importorder reports import declarations that are not in canonical order and
// suggests a fix that sorts the whole import block.
//
// # Order
//
// Imports are grouped and sorted:
//
//   - Blank imports, which are imported for their side effects only, come first.
//   - Imports of absolute paths come before relative imports.
//   - Within each group, imports are sorted by path.
//
// A path imported twice is reported, but never fixed.
//
// # Example
//
// Before:
//
//	import (
//	    "os"
//	    // formatting
//	    "fmt"
//	    _ "embed"
//	)
//
// After applying importorder's suggested fix:
//
//	import (
//	    _ "embed"
//	    // formatting
//	    "fmt"
//	    "os"
//	)
//
// Comments stay with the import they precede. Imports of separate import
// declarations are reported, but not moved across declarations.
package analyzer
