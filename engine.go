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
	"fmt"
	"log/slog"

	"znkr.io/textcmp/chardiff"
	"znkr.io/textcmp/internal/config"
	"znkr.io/textcmp/internal/normalize"
	"znkr.io/textcmp/jsondiff"
	"znkr.io/textcmp/textdiff"
)

// Structured documents are always rendered with this many lines of context.
const documentContext = 3

const invalidJSON = "Invalid JSON format: "

// Engine compares texts and logs its progress. The zero value is not usable, use [New].
//
// An Engine is safe for concurrent use.
type Engine struct {
	log *slog.Logger
}

// New returns an engine that logs to logger. If logger is nil, nothing is logged.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{log: logger}
}

var defaultEngine = New(nil)

// Compare compares x and y in the given mode without logging, see [Engine.Compare].
func Compare(x, y string, mode Mode, opts ...Option) (Result, error) {
	return defaultEngine.Compare(x, y, mode, opts...)
}

// CompareBasic reports whether x and y are identical without logging, see [Engine.CompareBasic].
func CompareBasic(x, y string) Basic {
	return defaultEngine.CompareBasic(x, y)
}

// CompareBasic reports whether x and y are identical. No options are applied.
func (e *Engine) CompareBasic(x, y string) Basic {
	e.log.Debug("starting basic text comparison")
	b := Basic{
		Identical: x == y,
		Length1:   len([]rune(x)),
		Length2:   len([]rune(y)),
		Summary:   summaryDifferent,
	}
	if b.Identical {
		b.Summary = summaryIdentical
	}
	e.log.Info("basic text comparison completed", "identical", b.Identical)
	return b
}

// Compare compares x and y in the given mode.
//
// Both inputs are normalized according to the options first. Inputs that are equal after
// normalization are identical in every mode and the result only reports that. Otherwise, the
// comparison depends on the mode:
//
//   - [Text] returns a [*TextResult] with a unified diff, side-by-side rows, character segments,
//     and statistics.
//   - [JSON] returns a [*JSONResult] with the structural changes between both documents. Invalid
//     JSON doesn't fail the comparison, it's reported in the result.
//   - [XML] returns a [*XMLResult] with a unified diff.
//   - [Code] returns a [*CodeResult] that ignores comments and whitespace.
//
// The following options are supported: [Context], [IgnoreCase], [IgnoreWhitespace],
// [IgnoreLineEndings]. The only possible error is an [*Error] of kind Processing.
func (e *Engine) Compare(x, y string, mode Mode, opts ...Option) (res Result, err error) {
	cfg := config.FromOptions(opts)
	cfg.Mode = mode
	log := e.log.With("mode", mode)
	log.Info("starting comparison")

	defer func() {
		if r := recover(); r != nil {
			log.Error("comparison failed", "panic", r)
			res, err = nil, &Error{Kind: Processing, Msg: "diff processing failed", Err: fmt.Errorf("%v", r)}
		}
	}()

	x, y = normalize.Text(x, cfg), normalize.Text(y, cfg)
	if x == y {
		log.Info("inputs are identical after normalization")
		return identical(x, cfg), nil
	}

	switch mode {
	case Text:
		res = compareText(x, y, cfg)
	case JSON:
		res = compareJSON(log, x, y)
	case XML:
		res = compareXML(x, y)
	case Code:
		res = compareCode(x, y, cfg)
	default:
		panic(fmt.Sprintf("unknown mode %v", mode))
	}
	log.Info("comparison completed", "identical", res.IsIdentical())
	return res, nil
}

func identical(s string, cfg config.Config) Result {
	switch cfg.Mode {
	case Text:
		lines := textdiff.Split(s)
		return &TextResult{Identical: true, Statistics: statistics(lines, lines, chardiff.Diff(s, s))}
	case JSON:
		return &JSONResult{Identical: true}
	case XML:
		return &XMLResult{Identical: true, Note: XMLNote}
	case Code:
		return &CodeResult{Identical: true, OriginalIdentical: true}
	default:
		panic(fmt.Sprintf("unknown mode %v", cfg.Mode))
	}
}

func compareText(x, y string, cfg config.Config) *TextResult {
	xlines, ylines := textdiff.Split(x), textdiff.Split(y)
	rows := textdiff.SideBySide(xlines, ylines)
	segs := chardiff.Diff(x, y)
	return &TextResult{
		UnifiedDiff: textdiff.Unified(xlines, ylines, cfg.Context),
		Rows:        rows,
		TotalLines:  len(rows),
		Segments:    segs,
		Statistics:  statistics(xlines, ylines, segs),
	}
}

func compareJSON(log *slog.Logger, x, y string) *JSONResult {
	nx, err := jsondiff.Parse(x)
	if err == nil {
		var ny jsondiff.Node
		ny, err = jsondiff.Parse(y)
		if err == nil {
			return compareJSONNodes(nx, ny)
		}
	}
	log.Warn("invalid JSON input", "err", err)
	return &JSONResult{
		Error: invalidJSON + err.Error(),
		Err:   &Error{Kind: JSONParse, Msg: "invalid JSON", Err: err},
	}
}

func compareJSONNodes(x, y jsondiff.Node) *JSONResult {
	if x.Equal(y) {
		return &JSONResult{Identical: true}
	}
	return &JSONResult{
		Changes: jsondiff.Compare(x, y),
		UnifiedDiff: textdiff.Unified(
			textdiff.Split(jsondiff.Pretty(x)),
			textdiff.Split(jsondiff.Pretty(y)),
			documentContext,
		),
	}
}

func compareXML(x, y string) *XMLResult {
	return &XMLResult{
		Note:        XMLNote,
		UnifiedDiff: textdiff.Unified(textdiff.Split(x), textdiff.Split(y), documentContext),
	}
}

func compareCode(x, y string, cfg config.Config) *CodeResult {
	return &CodeResult{
		Identical:         normalize.Code(x) == normalize.Code(y),
		OriginalIdentical: false,
		UnifiedDiff:       textdiff.Unified(textdiff.Split(x), textdiff.Split(y), cfg.Context),
		CodeStatistics:    codeStatistics(x, y),
	}
}
