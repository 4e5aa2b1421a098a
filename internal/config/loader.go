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

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// configName is the config file name without extension.
	configName = ".importorder"

	// configType is the config file format.
	configType = "yaml"

	// envPrefix is the environment variable prefix for importorder settings.
	envPrefix = "IMPORTORDER"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Settings is the configuration of the command line linter.
// Field tags use mapstructure for viper unmarshalling.
type Settings struct {
	SortMembers   bool     `mapstructure:"sort_members"   yaml:"sort_members"`
	CaseSensitive bool     `mapstructure:"case_sensitive" yaml:"case_sensitive"`
	Workers       int      `mapstructure:"workers"        yaml:"workers"`
	Exclude       []string `mapstructure:"exclude"        yaml:"exclude"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"sort-members":   "sort_members",
	"case-sensitive": "case_sensitive",
	"workers":        "workers",
	"exclude":        "exclude",
}

// Load loads the configuration from defaults, the config file, environment variables and flags,
// in increasing order of precedence.
//
// If path is non-empty, it is used as the explicit config file path. Otherwise, the config file
// is searched in the current directory and $HOME. A missing config file is not an error.
func Load(path string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault("sort_members", true)
	v.SetDefault("case_sensitive", false)
	v.SetDefault("workers", 0)
	v.SetDefault("exclude", []string{"node_modules", "vendor"})

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if s.Workers < 0 {
		return Settings{}, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, s.Workers)
	}

	return s, nil
}

// Behavior returns the behavioral options of the settings.
func (s Settings) Behavior() Behavior {
	var b Behavior
	b.Set(SortMembers, s.SortMembers)
	b.Set(CaseSensitive, s.CaseSensitive)

	return b
}
