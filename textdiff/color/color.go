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

// Package color adds ANSI terminal colors to unified diffs produced by
// [znkr.io/textcmp/textdiff.Unified].
package color

import (
	"fmt"
	"strings"
)

const reset = "\033[0m"

// Palette holds the escape sequences used for the parts of a unified diff. An empty sequence
// leaves that part uncolored.
type Palette struct {
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// A Option makes it possible to configure custom colors in [New].
type Option func(*Palette)

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified diff.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(p *Palette) {
		p.HunkHeader = code
	}
}

// Matches colors unchanged lines.
func Matches(params ...int) Option {
	code := format(params)
	return func(p *Palette) {
		p.Match = code
	}
}

// Deletes colors lines removed from the left side.
func Deletes(params ...int) Option {
	code := format(params)
	return func(p *Palette) {
		p.Delete = code
	}
}

// Inserts colors lines added from the right side.
func Inserts(params ...int) Option {
	code := format(params)
	return func(p *Palette) {
		p.Insert = code
	}
}

// New returns a palette with cyan hunk headers, red deletions, and green insertions, modified by
// opts.
func New(opts ...Option) Palette {
	p := Palette{
		HunkHeader: format([]int{36}),
		Delete:     format([]int{31}),
		Insert:     format([]int{32}),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Unified colors every line of the unified diff according to its prefix.
func (p Palette) Unified(diff string) string {
	var sb strings.Builder
	sb.Grow(len(diff))
	for line := range strings.SplitAfterSeq(diff, "\n") {
		body, nl := strings.CutSuffix(line, "\n")
		var code string
		switch {
		case body == "":
			// Separator between hunks.
		case strings.HasPrefix(body, "@@"):
			code = p.HunkHeader
		case strings.HasPrefix(body, "- "):
			code = p.Delete
		case strings.HasPrefix(body, "+ "):
			code = p.Insert
		default:
			code = p.Match
		}
		if code != "" {
			sb.WriteString(code)
			sb.WriteString(body)
			sb.WriteString(reset)
		} else {
			sb.WriteString(body)
		}
		if nl {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
