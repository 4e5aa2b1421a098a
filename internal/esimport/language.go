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

package esimport

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/alexaandru/go-sitter-forest/javascript"
	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
)

// ErrUnsupportedLanguage is returned for files no grammar is available for.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a source language with a tree-sitter grammar.
type Language uint8

//go:generate go tool stringer -type Language -linecomment
const (
	JavaScript Language = iota // javascript
	TypeScript                 // typescript
	TSX                        // tsx

	numLanguages = iota
)

var extensions = map[string]Language{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// LanguageFor returns the language of a file by its extension.
func LanguageFor(path string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if strings.HasSuffix(strings.ToLower(path), ".d.ts") {
		return 0, fmt.Errorf("%s: declaration file: %w", path, ErrUnsupportedLanguage)
	}

	lang, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedLanguage)
	}

	return lang, nil
}

// Extensions returns the file extensions of supported languages.
func Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}

	return exts
}

var grammars = [numLanguages]func() *sitter.Language{
	JavaScript: grammar(javascript.GetLanguage),
	TypeScript: grammar(typescript.GetLanguage),
	TSX:        grammar(tsx.GetLanguage),
}

func grammar(fn func() unsafe.Pointer) func() *sitter.Language {
	return sync.OnceValue(func() *sitter.Language { return sitter.NewLanguage(fn()) })
}

func (l Language) valid() bool { return l < numLanguages }
