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

package astutil

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// internalErrorPrefix marks diagnostics about failures of the import order check itself.
const internalErrorPrefix = linterName + ": internal error: "

// InternalError reports that the imports in rng could not be checked, for example
// because the file changed on disk or its import specs could not be collected.
// The diagnostic points at a bug in importorder, not at the checked imports.
func InternalError(p *analysis.Pass, rng analysis.Range, format string, args ...any) {
	msg := fmt.Appendf([]byte(internalErrorPrefix), format, args...)

	p.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: "internal-error",
		Message:  string(msg),
	})
}
