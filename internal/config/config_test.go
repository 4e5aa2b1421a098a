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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/importorder/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".importorder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	s, err := Load(writeConfig(t, "---\n"), nil)
	r.NoError(err)

	r.True(s.SortMembers)
	r.False(s.CaseSensitive)
	r.Zero(s.Workers)
	r.Equal([]string{"node_modules", "vendor"}, s.Exclude)

	r.Equal(DefaultBehavior(), s.Behavior())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	path := writeConfig(t, "sort_members: false\ncase_sensitive: true\nworkers: 3\nexclude: [dist]\n")

	s, err := Load(path, nil)
	r.NoError(err)

	r.False(s.SortMembers)
	r.True(s.CaseSensitive)
	r.Equal(3, s.Workers)
	r.Equal([]string{"dist"}, s.Exclude)

	opts := RuleOptions(s.Behavior())
	r.False(opts.SortMembers)
	r.True(opts.CaseSensitive)
}

func TestLoadFlags(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("case-sensitive", false, "")
	flags.Int("workers", 0, "")
	r.NoError(flags.Parse([]string{"--case-sensitive", "--workers=2"}))

	s, err := Load(writeConfig(t, "case_sensitive: false\nworkers: 5\n"), flags)
	r.NoError(err)

	r.True(s.CaseSensitive)
	r.Equal(2, s.Workers)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("IMPORTORDER_SORT_MEMBERS", "false")

	s, err := Load(writeConfig(t, "sort_members: true\n"), nil)
	require.NoError(t, err)
	require.False(t, s.SortMembers)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	_, err := Load(writeConfig(t, "workers: -1\n"), nil)
	r.ErrorIs(err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	r.Error(err)
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(SortMembers, IncludeGenerated)

	if !b.Enabled(SortMembers) || b.Enabled(CaseSensitive) || !b.Enabled(IncludeGenerated) {
		t.Errorf("Unexpected flags in %v", b)
	}

	b.Disable(SortMembers)
	if b.Enabled(SortMembers) {
		t.Error("Expected SortMembers to be disabled")
	}

	if c := b.With(CaseSensitive, true); !c.Enabled(CaseSensitive) || b.Enabled(CaseSensitive) {
		t.Error("Expected With to return a modified copy")
	}
}
