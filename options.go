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

package textcmp

import "znkr.io/textcmp/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of unchanged lines to include before and after every hunk of a unified
// diff. Negative values are treated as 0. The default is 3.
//
// JSON and XML comparisons always use 3 lines of context.
func Context(n int) Option {
	return func(cfg *config.Config) {
		cfg.Context = max(0, n)
	}
}

// IgnoreCase compares both inputs after converting them to lower case.
func IgnoreCase() Option {
	return func(cfg *config.Config) {
		cfg.IgnoreCase = true
	}
}

// IgnoreWhitespace replaces every run of whitespace, including line breaks, with a single space and
// removes leading and trailing whitespace before comparing the inputs. Note that this turns every
// input into a single line.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) {
		cfg.IgnoreWhitespace = true
	}
}

// IgnoreLineEndings replaces "\r\n" and "\r" with "\n" before comparing the inputs.
func IgnoreLineEndings() Option {
	return func(cfg *config.Config) {
		cfg.IgnoreLineEndings = true
	}
}

// Mode selects how the inputs are interpreted.
type Mode = config.Mode

const (
	Text = config.ModeText // Plain text, compared line by line.
	JSON = config.ModeJSON // JSON documents, compared structurally.
	XML  = config.ModeXML  // XML documents, currently compared like text.
	Code = config.ModeCode // Source code, compared without comments and whitespace.
)

// ParseMode returns the mode with the given name ("text", "json", "xml", or "code"). Case is
// ignored.
func ParseMode(s string) (Mode, error) {
	return config.ParseMode(s)
}
