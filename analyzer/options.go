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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/importorder/internal/config"
	"fillmore-labs.com/importorder/internal/run"
)

// Option configures specific behavior of a [New] importorder analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return behaviorOption{"generated", config.IncludeGenerated, generated} }

// WithSortMembers is an [Option] to configure checking the order of named bindings.
func WithSortMembers(sortMembers bool) Option {
	return behaviorOption{"sort-members", config.SortMembers, sortMembers}
}

// WithCaseSensitive is an [Option] to configure case sensitive comparison of binding names.
func WithCaseSensitive(caseSensitive bool) Option {
	return behaviorOption{"case-sensitive", config.CaseSensitive, caseSensitive}
}

type behaviorOption struct {
	name  string
	flag  config.Flags
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.value)
}
