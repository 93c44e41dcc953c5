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

// Package similarity scores how alike two strings are.
//
// All functions operate on runes, lengths and offsets are counted in runes.
package similarity

// Distance returns the Levenshtein distance between x and y, i.e., the minimum number of single rune
// insertions, deletions, and substitutions needed to transform x into y.
//
// The runtime is O(len(x)·len(y)), memory is O(len(y)).
func Distance(x, y []rune) int {
	if len(x) == 0 {
		return len(y)
	}
	if len(y) == 0 {
		return len(x)
	}

	prev := make([]int, len(y)+1)
	curr := make([]int, len(y)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(x); i++ {
		curr[0] = i
		for j := 1; j <= len(y); j++ {
			cost := 1
			if x[i-1] == y[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(y)]
}

// Ratio returns 1 - Distance(x, y) / max(len(x), len(y)). Two empty inputs have a ratio of 1.
func Ratio(x, y []rune) float64 {
	n := max(len(x), len(y))
	if n == 0 {
		return 1
	}
	return 1 - float64(Distance(x, y))/float64(n)
}

// CommonPrefix returns the length of the longest common prefix of x and y.
func CommonPrefix(x, y []rune) int {
	n := min(len(x), len(y))
	for i := range n {
		if x[i] != y[i] {
			return i
		}
	}
	return n
}

// CommonSuffix returns the length of the longest common suffix of x and y.
//
// The suffix is computed independently of the prefix: for inputs like "aa" and "aaa" prefix and
// suffix overlap.
func CommonSuffix(x, y []rune) int {
	n := min(len(x), len(y))
	for i := 1; i <= n; i++ {
		if x[len(x)-i] != y[len(y)-i] {
			return i - 1
		}
	}
	return n
}
