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

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"fillmore-labs.com/importorder/internal/rule"
	"fillmore-labs.com/importorder/internal/source"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

type printer struct {
	w io.Writer

	position, kind, failed *color.Color
	header, deleted, added *color.Color
	elided                 *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:        w,
		position: color.New(color.Bold),
		kind:     color.New(color.FgYellow),
		failed:   color.New(color.FgRed, color.Bold),
		header:   color.New(color.Bold),
		deleted:  color.New(color.FgRed),
		added:    color.New(color.FgGreen),
		elided:   color.New(color.FgCyan),
	}

	if noColor {
		for _, c := range []*color.Color{p.position, p.kind, p.failed, p.header, p.deleted, p.added, p.elided} {
			c.DisableColor()
		}
	}

	return p
}

// violations prints one line per violation: path:line:column: message (kind).
func (p *printer) violations(path string, src []byte, violations []rule.Violation) {
	if len(violations) == 0 {
		return
	}

	lines := source.NewLines(src)

	for _, v := range violations {
		line, column := lines.Position(v.Span.Start)

		_, _ = fmt.Fprintf(p.w, "%s: %s (%s)\n",
			p.position.Sprintf("%s:%d:%d", path, line, column), v.Message, p.kind.Sprint(v.Kind))
	}
}

func (p *printer) failure(path string, err error) {
	_, _ = fmt.Fprintf(p.w, "%s: %s\n", p.position.Sprint(path), p.failed.Sprint(err))
}

// diff prints a line diff between the original and the fixed source.
func (p *printer) diff(path string, before, after []byte) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	_, _ = p.header.Fprintf(p.w, "--- %s\n+++ %s (fixed)\n", path, path)

	for i, d := range diffs {
		text := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			p.lines(p.deleted, "-", text)

		case diffmatchpatch.DiffInsert:
			p.lines(p.added, "+", text)

		case diffmatchpatch.DiffEqual:
			head, tail := len(text), 0
			if i == 0 {
				head = 0
			}

			if i < len(diffs)-1 {
				tail = min(diffContext, len(text))
			}

			if i > 0 {
				head = min(diffContext, len(text))
			}

			if head+tail >= len(text) {
				p.lines(nil, " ", text)

				continue
			}

			p.lines(nil, " ", text[:head])

			if i > 0 && i < len(diffs)-1 {
				_, _ = p.elided.Fprintln(p.w, "@@")
			}

			p.lines(nil, " ", text[len(text)-tail:])
		}
	}
}

func (p *printer) lines(c *color.Color, prefix string, lines []string) {
	for _, l := range lines {
		if c == nil {
			_, _ = fmt.Fprintln(p.w, prefix+l)

			continue
		}

		_, _ = c.Fprintln(p.w, prefix+l)
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
