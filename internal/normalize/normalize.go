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

// Package normalize rewrites inputs so that differences the caller asked to ignore disappear before
// the inputs are compared.
package normalize

import (
	"regexp"
	"strings"

	"znkr.io/textcmp/internal/config"
)

var (
	whitespace   = regexp.MustCompile(`[\t\n\v\f\r ]+`)
	lineComment  = regexp.MustCompile(`(?m)//.*$`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Text applies the normalizations enabled in cfg. The order is fixed: line endings first, then
// whitespace, then case. Collapsing whitespace before normalizing line endings would turn a lone
// '\r' into a space instead of a line break.
func Text(s string, cfg config.Config) string {
	if cfg.IgnoreLineEndings {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	if cfg.IgnoreWhitespace {
		s = collapse(s)
	}
	if cfg.IgnoreCase {
		s = strings.ToLower(s)
	}
	return s
}

// Code strips line and block comments from s and collapses all whitespace.
//
// Comments are recognized lexically, comment markers inside string literals are stripped too. Block
// comments don't nest, the first "*/" ends a block comment.
func Code(s string) string {
	s = lineComment.ReplaceAllString(s, "")
	s = blockComment.ReplaceAllString(s, "")
	return collapse(s)
}

// LinesOfCode counts the non-empty lines of s that don't start with a comment.
func LinesOfCode(s string) int {
	n := 0
	for line := range strings.SplitSeq(s, "\n") {
		line = trim(line)
		if line != "" && !strings.HasPrefix(line, "//") && !strings.HasPrefix(line, "/*") {
			n++
		}
	}
	return n
}

// CommentLines counts the lines of s that start with "//", "/*", or "*" after trimming. The latter
// catches continuation lines of block comments.
func CommentLines(s string) int {
	n := 0
	for line := range strings.SplitSeq(s, "\n") {
		line = trim(line)
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*") {
			n++
		}
	}
	return n
}

// collapse replaces every whitespace run with a single space and trims the result.
func collapse(s string) string {
	return trim(whitespace.ReplaceAllString(s, " "))
}

// trim removes leading and trailing spaces and ASCII control characters.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}
