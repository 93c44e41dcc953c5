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

// Package textcmp compares two texts and describes how they differ.
//
// The main function is [Compare], which interprets both texts according to a [Mode] and returns a
// mode specific [Result]: a line based unified diff, side-by-side rows with character highlights, a
// character level decomposition, and statistics for plain text; a structural change list for JSON;
// a comment insensitive comparison for source code. [CompareBasic] only reports whether two texts
// are identical.
//
// Lines are compared by position, x[i] is compared with y[i]. There is no attempt to align the
// inputs, a single inserted line marks every following line as changed.
//
// Performance: Similarity scores are based on the Levenshtein distance, which is O(NM) in time
// for every compared pair. Callers are responsible for limiting the size of the inputs.
//
// For a line-by-line unified diff of two slices of lines, please see [znkr.io/textcmp/textdiff].
package textcmp
