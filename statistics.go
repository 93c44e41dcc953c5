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
	"znkr.io/textcmp/internal/normalize"
)

// Statistics summarizes the differences between two texts.
type Statistics struct {
	// Line statistics. Lines are compared by position, lines present on only one side count as
	// changed. ChangePercentage relates ChangedLines to TotalLines1 and is 0 if x has no lines.
	TotalLines1      int     `json:"totalLines1" yaml:"totalLines1"`
	TotalLines2      int     `json:"totalLines2" yaml:"totalLines2"`
	UnchangedLines   int     `json:"unchangedLines" yaml:"unchangedLines"`
	ChangedLines     int     `json:"changedLines" yaml:"changedLines"`
	ChangePercentage float64 `json:"changePercentage" yaml:"changePercentage"`

	// Character statistics based on the segments returned by [chardiff.Diff].
	// TotalChanges = AddedChars + DeletedChars.
	AddedChars     int `json:"addedCharacters" yaml:"addedCharacters"`
	DeletedChars   int `json:"deletedCharacters" yaml:"deletedCharacters"`
	UnchangedChars int `json:"unchangedCharacters" yaml:"unchangedCharacters"`
	TotalChanges   int `json:"totalChanges" yaml:"totalChanges"`

	// Similarity is the share of unchanged characters among all characters of the decomposition. It
	// is 1 if there are no characters at all.
	Similarity           float64 `json:"similarity" yaml:"similarity"`
	SimilarityPercentage float64 `json:"similarityPercentage" yaml:"similarityPercentage"`
}

func statistics(x, y []string, segs []chardiff.Segment) Statistics {
	var s Statistics
	s.TotalLines1, s.TotalLines2 = len(x), len(y)
	for i := range min(len(x), len(y)) {
		if x[i] == y[i] {
			s.UnchangedLines++
		} else {
			s.ChangedLines++
		}
	}
	s.ChangedLines += max(len(x), len(y)) - min(len(x), len(y))
	if len(x) > 0 {
		s.ChangePercentage = float64(s.ChangedLines) / float64(len(x)) * 100
	}

	for _, seg := range segs {
		switch seg.Op {
		case chardiff.Equal:
			s.UnchangedChars += seg.Len
		case chardiff.Delete:
			s.DeletedChars += seg.Len
		case chardiff.Insert:
			s.AddedChars += seg.Len
		default:
			panic("never reached")
		}
	}
	s.TotalChanges = s.AddedChars + s.DeletedChars
	s.Similarity = 1
	if n := s.TotalChanges + s.UnchangedChars; n > 0 {
		s.Similarity = float64(s.UnchangedChars) / float64(n)
	}
	s.SimilarityPercentage = s.Similarity * 100
	return s
}

// CodeStatistics counts code and comment lines of both inputs of a code comparison.
//
// A line of code is a non-empty line that doesn't start with "//" or "/*". A comment line starts
// with "//", "/*", or "*". Leading and trailing whitespace is ignored in both cases.
type CodeStatistics struct {
	LinesOfCode1  int `json:"linesOfCode1" yaml:"linesOfCode1"`
	LinesOfCode2  int `json:"linesOfCode2" yaml:"linesOfCode2"`
	CommentLines1 int `json:"commentLines1" yaml:"commentLines1"`
	CommentLines2 int `json:"commentLines2" yaml:"commentLines2"`
}

func codeStatistics(x, y string) *CodeStatistics {
	return &CodeStatistics{
		LinesOfCode1:  normalize.LinesOfCode(x),
		LinesOfCode2:  normalize.LinesOfCode(y),
		CommentLines1: normalize.CommentLines(x),
		CommentLines2: normalize.CommentLines(y),
	}
}
