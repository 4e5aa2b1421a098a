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

package lint

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/importorder/internal/esimport"
)

// FindSourceFiles returns the supported source files named by paths, searching
// directories recursively. Hidden directories and directories named in exclude
// are skipped. Files named explicitly must be of a supported language.
func FindSourceFiles(paths, exclude []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if _, err := esimport.LanguageFor(root); err != nil {
				return nil, err
			}

			files = append(files, filepath.Clean(root))

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name(), exclude) {
					return filepath.SkipDir
				}

				return nil
			}

			if _, err := esimport.LanguageFor(path); err != nil {
				if errors.Is(err, esimport.ErrUnsupportedLanguage) {
					return nil
				}

				return err
			}

			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func skipDir(name string, exclude []string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(exclude, name)
}
