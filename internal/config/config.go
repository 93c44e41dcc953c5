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

package config

import (
	"fmt"
	"strings"
)

// Mode selects how two inputs are interpreted before comparison.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Mode -linecomment
type Mode int

const (
	ModeText Mode = iota // text
	ModeJSON             // json
	ModeXML              // xml
	ModeCode             // code
)

type Config struct {
	// Context is the number of unchanged lines to include before and after each hunk.
	Context int

	// Normalizations applied to both inputs before they are compared. They are applied in the
	// order line endings, whitespace, case.
	IgnoreLineEndings bool
	IgnoreWhitespace  bool
	IgnoreCase        bool

	// Comparison mode.
	Mode Mode
}

var Default = Config{
	Context:           3,
	IgnoreLineEndings: false,
	IgnoreWhitespace:  false,
	IgnoreCase:        false,
	Mode:              ModeText,
}

type Option func(*Config)

func FromOptions(opts []Option) Config {
	cfg := Default
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ParseMode parses the name of a mode case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m := ModeText; m <= ModeCode; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
