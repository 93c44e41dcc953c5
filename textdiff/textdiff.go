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

// Package textdiff compares texts line by line and renders the result as a unified diff or as
// side-by-side rows with character highlights.
//
// Lines are compared by position, see [znkr.io/textcmp/internal/edits]. Hunk headers therefore
// always report the same range for both sides.
package textdiff

import (
	"fmt"
	"strings"

	"znkr.io/textcmp/internal/edits"
	"znkr.io/textcmp/internal/similarity"
)

const (
	prefixMatch  = "  "
	prefixDelete = "- "
	prefixInsert = "+ "
)

// Highlighting threshold: lines with a similarity ratio above this value get prefix, changed, and
// suffix spans, all others are marked as entirely deleted.
const highlightThreshold = 0.5

// Split splits s into lines at every '\n'. Empty lines are kept, including a trailing one, so that
// Split("a\n") returns two lines.
func Split(s string) []string {
	return strings.Split(s, "\n")
}

// Unified returns a unified diff of x and y with context lines around every change.
//
// Every hunk starts with a header "@@ -start,len +start,len @@" and is followed by an empty line.
// Unchanged lines are prefixed with two spaces, changed lines are emitted as a "- " line from x
// followed by a "+ " line from y (each only if the line exists on that side). If x and y are
// identical, the output is empty.
func Unified(x, y []string, context int) string {
	flags := edits.Compare(x, y)
	var b strings.Builder
	for _, h := range edits.Hunks(flags, max(0, context)) {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.S0+1, h.S1-h.S0, h.S0+1, h.S1-h.S0)
		for i := h.S0; i < h.S1; i++ {
			if flags[i] == edits.None {
				writeLine(&b, prefixMatch, edits.At(x, i))
				continue
			}
			if flags[i]&edits.Delete != 0 {
				writeLine(&b, prefixDelete, x[i])
			}
			if flags[i]&edits.Insert != 0 {
				writeLine(&b, prefixInsert, y[i])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeLine(b *strings.Builder, prefix, line string) {
	b.WriteString(prefix)
	b.WriteString(line)
	b.WriteByte('\n')
}

// RowStatus describes if the two lines of a [Row] are equal.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=RowStatus,SpanKind -linecomment
type RowStatus int

const (
	RowUnchanged RowStatus = iota // unchanged
	RowModified                   // modified
)

// SpanKind describes the part of a line covered by a [Span].
type SpanKind int

const (
	SpanUnchanged SpanKind = iota // unchanged
	SpanChanged                   // changed
	SpanDeleted                   // deleted
)

func (s RowStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (k SpanKind) MarshalText() ([]byte, error)  { return []byte(k.String()), nil }

// Span marks the runes [Start, End) of a line.
type Span struct {
	Start int      `json:"start" yaml:"start"`
	End   int      `json:"end" yaml:"end"`
	Kind  SpanKind `json:"type" yaml:"type"`
}

// Row is one line of a side-by-side comparison.
type Row struct {
	LineNo int       `json:"lineNumber" yaml:"lineNumber"` // 1-based
	Left   string    `json:"left" yaml:"left"`
	Right  string    `json:"right" yaml:"right"`
	Status RowStatus `json:"status" yaml:"status"`

	// Highlights are only set for modified rows.
	LeftHighlights  []Span `json:"leftHighlights,omitempty" yaml:"leftHighlights,omitempty"`
	RightHighlights []Span `json:"rightHighlights,omitempty" yaml:"rightHighlights,omitempty"`
}

// SideBySide pairs up the lines of x and y by position. A line missing on one side is shown as an
// empty line.
func SideBySide(x, y []string) []Row {
	n := max(len(x), len(y))
	if n == 0 {
		return nil
	}
	rows := make([]Row, n)
	for i := range n {
		left, right := edits.At(x, i), edits.At(y, i)
		rows[i] = Row{LineNo: i + 1, Left: left, Right: right}
		if left == right {
			continue
		}
		rows[i].Status = RowModified
		rows[i].LeftHighlights = Highlights(left, right)
		rows[i].RightHighlights = Highlights(right, left)
	}
	return rows
}

// Highlights returns the spans of subject that differ from other.
//
// If both lines are similar enough, subject is split into an unchanged common prefix, a changed
// middle, and an unchanged common suffix, omitting empty parts. Prefix and suffix are computed
// independently and may overlap for short lines with repeated runes. Otherwise, a single deleted
// span covers all of subject.
func Highlights(subject, other string) []Span {
	s, o := []rune(subject), []rune(other)
	if similarity.Ratio(s, o) <= highlightThreshold {
		return []Span{{0, len(s), SpanDeleted}}
	}

	prefix := similarity.CommonPrefix(s, o)
	suffix := similarity.CommonSuffix(s, o)
	var spans []Span
	if prefix > 0 {
		spans = append(spans, Span{0, prefix, SpanUnchanged})
	}
	if prefix < len(s)-suffix {
		spans = append(spans, Span{prefix, len(s) - suffix, SpanChanged})
	}
	if suffix > 0 {
		spans = append(spans, Span{len(s) - suffix, len(s), SpanUnchanged})
	}
	return spans
}
