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

import (
	"znkr.io/textcmp/chardiff"
	"znkr.io/textcmp/jsondiff"
	"znkr.io/textcmp/textdiff"
)

// Result is the outcome of [Compare]. The concrete type depends on the comparison mode and is one
// of [*TextResult], [*JSONResult], [*XMLResult], or [*CodeResult].
type Result interface {
	// Mode returns the mode the inputs were compared with.
	Mode() Mode
	// IsIdentical reports whether the inputs are considered identical in this mode.
	IsIdentical() bool

	result()
}

// TextResult is the result of a plain text comparison.
//
// If the inputs are identical, only Identical and Statistics are set.
type TextResult struct {
	Identical   bool   `json:"identical" yaml:"identical"`
	UnifiedDiff string `json:"unifiedDiff" yaml:"unifiedDiff"`

	// Rows pairs up the lines of both inputs by position. TotalLines is the number of rows.
	Rows       []textdiff.Row `json:"sideBySide,omitempty" yaml:"sideBySide,omitempty"`
	TotalLines int            `json:"totalLines" yaml:"totalLines"`

	// Segments decomposes the whole text into equal, deleted, and inserted parts.
	Segments []chardiff.Segment `json:"diffDetails,omitempty" yaml:"diffDetails,omitempty"`

	Statistics Statistics `json:"statistics" yaml:"statistics"`
}

// JSONResult is the result of a structural JSON comparison.
//
// If either input isn't valid JSON, Identical is false and Error describes the problem.
type JSONResult struct {
	Identical bool              `json:"identical" yaml:"identical"`
	Changes   []jsondiff.Change `json:"structuralChanges,omitempty" yaml:"structuralChanges,omitempty"`

	// Unified diff of both documents after pretty printing them with 3 lines of context.
	UnifiedDiff string `json:"unifiedDiff,omitempty" yaml:"unifiedDiff,omitempty"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	Err   error  `json:"-" yaml:"-"` // The *Error behind Error.
}

// XMLResult is the result of an XML comparison. XML is compared line by line like text with 3 lines
// of context.
type XMLResult struct {
	Identical   bool   `json:"identical" yaml:"identical"`
	Note        string `json:"note" yaml:"note"`
	UnifiedDiff string `json:"unifiedDiff,omitempty" yaml:"unifiedDiff,omitempty"`
}

// XMLNote is the note attached to every [XMLResult].
const XMLNote = "XML diff is currently treated as text diff"

// CodeResult is the result of a source code comparison.
//
// Identical reports whether both inputs are equal after removing comments and collapsing
// whitespace. OriginalIdentical reports whether they are equal after the requested normalizations
// ([IgnoreCase], [IgnoreWhitespace], [IgnoreLineEndings]) alone. The unified diff is computed on
// those lines, so that comment and layout differences stay visible.
type CodeResult struct {
	Identical         bool            `json:"identical" yaml:"identical"`
	OriginalIdentical bool            `json:"originalIdentical" yaml:"originalIdentical"`
	UnifiedDiff       string          `json:"unifiedDiff,omitempty" yaml:"unifiedDiff,omitempty"`
	CodeStatistics    *CodeStatistics `json:"codeStatistics,omitempty" yaml:"codeStatistics,omitempty"`
}

func (*TextResult) Mode() Mode { return Text }
func (*JSONResult) Mode() Mode { return JSON }
func (*XMLResult) Mode() Mode  { return XML }
func (*CodeResult) Mode() Mode { return Code }

func (r *TextResult) IsIdentical() bool { return r.Identical }
func (r *JSONResult) IsIdentical() bool { return r.Identical }
func (r *XMLResult) IsIdentical() bool  { return r.Identical }
func (r *CodeResult) IsIdentical() bool { return r.Identical }

func (*TextResult) result() {}
func (*JSONResult) result() {}
func (*XMLResult) result()  {}
func (*CodeResult) result() {}

// Basic is the result of [CompareBasic].
type Basic struct {
	Identical bool   `json:"identical" yaml:"identical"`
	Length1   int    `json:"length1" yaml:"length1"` // in runes
	Length2   int    `json:"length2" yaml:"length2"` // in runes
	Summary   string `json:"summary" yaml:"summary"`
}

const (
	summaryIdentical = "No differences found"
	summaryDifferent = "Found differences"
)
