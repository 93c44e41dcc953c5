// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"znkr.io/textcmp"
)

// settings are the merged flags, environment variables, and config file entries.
type settings struct {
	Mode              string `mapstructure:"mode"`
	Context           int    `mapstructure:"context"`
	IgnoreCase        bool   `mapstructure:"ignore-case"`
	IgnoreWhitespace  bool   `mapstructure:"ignore-whitespace"`
	IgnoreLineEndings bool   `mapstructure:"ignore-line-endings"`
	AllowEmpty        bool   `mapstructure:"allow-empty"`
	Basic             bool   `mapstructure:"basic"`
	Output            string `mapstructure:"output"`
	SideBySide        bool   `mapstructure:"side-by-side"`
	Color             string `mapstructure:"color"`
	Verbose           bool   `mapstructure:"verbose"`

	mode textcmp.Mode
}

func loadSettings(v *viper.Viper, flags *pflag.FlagSet) (settings, error) {
	if err := v.BindPFlags(flags); err != nil {
		return settings{}, err
	}
	v.SetEnvPrefix("TEXTCMP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := v.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := configDir()
		if err != nil {
			return settings{}, fmt.Errorf("failed to get config dir: %w", err)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	// The default config file is optional, a file given explicitly is not.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return settings{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	mode, err := textcmp.ParseMode(s.Mode)
	if err != nil {
		return settings{}, err
	}
	s.mode = mode
	if !slices.Contains([]string{"text", "json", "yaml"}, s.Output) {
		return settings{}, fmt.Errorf("unknown output format %q", s.Output)
	}
	if !slices.Contains([]string{"auto", "always", "never"}, s.Color) {
		return settings{}, fmt.Errorf("unknown color setting %q", s.Color)
	}
	return s, nil
}

func (s settings) options() []textcmp.Option {
	opts := []textcmp.Option{textcmp.Context(s.Context)}
	if s.IgnoreCase {
		opts = append(opts, textcmp.IgnoreCase())
	}
	if s.IgnoreWhitespace {
		opts = append(opts, textcmp.IgnoreWhitespace())
	}
	if s.IgnoreLineEndings {
		opts = append(opts, textcmp.IgnoreLineEndings())
	}
	return opts
}

// configDir returns the directory of the default config file.
func configDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "textcmp"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "textcmp"), nil
}
