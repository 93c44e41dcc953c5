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

// Package edits finds changed line positions and groups them into hunks.
//
// Lines are compared by position: x[i] is compared with y[i] and nothing is realigned. A single
// inserted or removed line therefore marks every following line as changed.
package edits

import "fmt"

type Flag uint8

const (
	None   Flag = 0
	Delete Flag = 1 << iota // x[i] exists and is replaced or removed
	Insert                  // y[i] exists and replaces x[i] or is added
)

func (e Flag) String() string {
	switch e {
	case None:
		return "none"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Insert | Delete:
		return "delete|insert"
	default:
		return fmt.Sprint(uint8(e))
	}
}

// At returns lines[i] or "" if i is out of range.
func At(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// Compare compares x and y position by position and returns one flag for each of the
// max(len(x), len(y)) positions. A position missing on one side compares as the empty line.
func Compare(x, y []string) []Flag {
	n := max(len(x), len(y))
	flags := make([]Flag, n)
	for i := range n {
		if At(x, i) == At(y, i) {
			continue
		}
		if i < len(x) {
			flags[i] |= Delete
		}
		if i < len(y) {
			flags[i] |= Insert
		}
	}
	return flags
}

// Changed returns the positions of all flags that are not None in ascending order.
func Changed(flags []Flag) []int {
	var changed []int
	for i, f := range flags {
		if f != None {
			changed = append(changed, i)
		}
	}
	return changed
}

// Group splits ascending positions into groups. A position joins the current group if it is at
// most 2*context positions after the previous one, i.e., if the context windows of both positions
// touch or overlap.
func Group(changed []int, context int) [][]int {
	var groups [][]int
	var cur []int
	for _, i := range changed {
		if len(cur) > 0 && i-cur[len(cur)-1] > 2*context {
			groups = append(groups, cur)
			cur = nil
		}
		cur = append(cur, i)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// Hunk is a half-open range of positions [S0, S1) around a group of changes. Positions are the
// same in x and y.
type Hunk struct {
	S0, S1 int
}

// Hunks groups the changed positions in flags and extends every group by context positions on
// both sides, clipped to [0, len(flags)]. Hunks are returned in ascending order and never overlap.
func Hunks(flags []Flag, context int) []Hunk {
	groups := Group(Changed(flags), context)
	if len(groups) == 0 {
		return nil
	}
	hunks := make([]Hunk, 0, len(groups))
	for _, g := range groups {
		hunks = append(hunks, Hunk{
			S0: max(0, g[0]-context),
			S1: min(len(flags), g[len(g)-1]+context+1),
		})
	}
	return hunks
}
