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

// Package chardiff decomposes a pair of texts into equal, deleted, and inserted segments.
//
// The decomposition is coarse: similar texts are split around their common prefix and suffix,
// dissimilar texts are replaced as a whole. Lengths are counted in runes.
package chardiff

import "znkr.io/textcmp/internal/similarity"

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op -linecomment
type Op int

const (
	Equal  Op = iota // EQUAL
	Delete           // DELETE
	Insert           // INSERT
)

func (op Op) MarshalText() ([]byte, error) { return []byte(op.String()), nil }

// Segment is a run of text with a single operation.
//
//   - For Equal, Text is present in both inputs.
//   - For Delete, Text is only present in x.
//   - For Insert, Text is only present in y.
type Segment struct {
	Op   Op     `json:"operation" yaml:"operation"`
	Text string `json:"text" yaml:"text"`
	Len  int    `json:"length" yaml:"length"` // in runes
}

// Texts with a similarity ratio above this threshold are split around their common prefix and
// suffix.
const threshold = 0.8

// Diff returns the segments that transform x into y.
//
// Concatenating the Equal and Delete segments yields x, concatenating the Equal and Insert segments
// yields y. Identical inputs result in a single Equal segment (or none if both are empty).
func Diff(x, y string) []Segment {
	if x == y {
		if x == "" {
			return nil
		}
		return []Segment{segment(Equal, []rune(x))}
	}

	rx, ry := []rune(x), []rune(y)
	if similarity.Ratio(rx, ry) <= threshold {
		var segs []Segment
		if len(rx) > 0 {
			segs = append(segs, segment(Delete, rx))
		}
		if len(ry) > 0 {
			segs = append(segs, segment(Insert, ry))
		}
		return segs
	}

	prefix := similarity.CommonPrefix(rx, ry)
	// Clip the suffix so that it doesn't overlap the prefix on the shorter side, otherwise the
	// segments would repeat text.
	suffix := min(similarity.CommonSuffix(rx, ry), min(len(rx), len(ry))-prefix)

	var segs []Segment
	if prefix > 0 {
		segs = append(segs, segment(Equal, rx[:prefix]))
	}
	if prefix < len(rx)-suffix {
		segs = append(segs, segment(Delete, rx[prefix:len(rx)-suffix]))
	}
	if prefix < len(ry)-suffix {
		segs = append(segs, segment(Insert, ry[prefix:len(ry)-suffix]))
	}
	if suffix > 0 {
		segs = append(segs, segment(Equal, rx[len(rx)-suffix:]))
	}
	return segs
}

func segment(op Op, r []rune) Segment {
	return Segment{Op: op, Text: string(r), Len: len(r)}
}
