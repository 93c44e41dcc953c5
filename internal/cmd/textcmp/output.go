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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"znkr.io/textcmp"
	"znkr.io/textcmp/jsondiff"
	"znkr.io/textcmp/textdiff"
	"znkr.io/textcmp/textdiff/color"
)

// Width of side-by-side output if stdout isn't a terminal.
const defaultWidth = 80

type printer struct {
	w          io.Writer
	format     string
	sideBySide bool
	color      bool
	width      int

	deleted, inserted lipgloss.Style
}

func newPrinter(w io.Writer, s settings) *printer {
	p := &printer{w: w, format: s.Output, sideBySide: s.SideBySide, width: defaultWidth}
	fd, tty := terminal(w)
	switch s.Color {
	case "always":
		p.color = true
	case "auto":
		p.color = tty
	}
	if tty {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			p.width = width
		}
	}
	if p.color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		p.deleted = r.NewStyle().Foreground(lipgloss.Color("1"))
		p.inserted = r.NewStyle().Foreground(lipgloss.Color("2"))
	}
	return p
}

func terminal(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// envelope is the response format of the comparison service.
type envelope struct {
	Status string          `json:"status" yaml:"status"`
	Data   any             `json:"data,omitempty" yaml:"data,omitempty"`
	Errors []responseError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type responseError struct {
	Code        string `json:"errorCode" yaml:"errorCode"`
	Description string `json:"errorDescription" yaml:"errorDescription"`
}

func (p *printer) structured() bool { return p.format != "text" }

func (p *printer) success(data any) error {
	return p.encode(envelope{Status: "SUCCESS", Data: data})
}

func (p *printer) failure(err error) error {
	code := "DTK-3002"
	var e *textcmp.Error
	if errors.As(err, &e) {
		code = e.Code()
	}
	return p.encode(envelope{
		Status: "FAILURE",
		Errors: []responseError{{Code: code, Description: err.Error()}},
	})
}

func (p *printer) encode(v envelope) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		panic("never reached")
	}
}

func (p *printer) basic(b textcmp.Basic) error {
	if p.structured() {
		return p.success(b)
	}
	_, err := fmt.Fprintln(p.w, b.Summary)
	return err
}

func (p *printer) result(res textcmp.Result) error {
	if p.structured() {
		return p.success(res)
	}
	switch r := res.(type) {
	case *textcmp.TextResult:
		if p.sideBySide && !r.Identical {
			return p.rows(r.Rows)
		}
		return p.unified(r.UnifiedDiff)
	case *textcmp.JSONResult:
		for _, c := range r.Changes {
			if _, err := fmt.Fprintln(p.w, describe(c)); err != nil {
				return err
			}
		}
		if len(r.Changes) > 0 && r.UnifiedDiff != "" {
			fmt.Fprintln(p.w)
		}
		return p.unified(r.UnifiedDiff)
	case *textcmp.XMLResult:
		return p.unified(r.UnifiedDiff)
	case *textcmp.CodeResult:
		if r.Identical && !r.OriginalIdentical {
			fmt.Fprintln(p.w, "Code is identical ignoring comments and whitespace.")
		}
		return p.unified(r.UnifiedDiff)
	default:
		panic("never reached")
	}
}

func describe(c jsondiff.Change) string {
	path := c.Path
	if path == "" {
		path = "(root)"
	}
	switch {
	case c.OldValue != "" && c.NewValue != "":
		return fmt.Sprintf("%v %s: %s -> %s", c.Kind, path, c.OldValue, c.NewValue)
	case c.OldValue != "":
		return fmt.Sprintf("%v %s: %s", c.Kind, path, c.OldValue)
	default:
		return fmt.Sprintf("%v %s: %s", c.Kind, path, c.NewValue)
	}
}

func (p *printer) unified(diff string) error {
	if p.color {
		diff = color.New().Unified(diff)
	}
	_, err := io.WriteString(p.w, diff)
	return err
}

// rows prints one line per row: the line number, the left line padded to a fixed width, a marker
// ("|" for modified rows), and the right line.
func (p *printer) rows(rows []textdiff.Row) error {
	digits := len(strconv.Itoa(len(rows)))
	col := max(10, (p.width-digits-4)/2)
	for _, r := range rows {
		left, w := p.cell(r.Left, r.LeftHighlights, p.deleted, col)
		right, _ := p.cell(r.Right, r.RightHighlights, p.inserted, col)
		sep := "   "
		if r.Status == textdiff.RowModified {
			sep = " | "
		}
		line := fmt.Sprintf("%*d %s%s%s%s", digits, r.LineNo, left, strings.Repeat(" ", col-w), sep, right)
		if _, err := fmt.Fprintln(p.w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// cell renders line cut to at most width columns with changed and deleted spans highlighted. It
// returns the rendered text and its width in columns.
func (p *printer) cell(line string, spans []textdiff.Span, style lipgloss.Style, width int) (string, int) {
	r := []rune(line)
	for i := range r {
		if r[i] == '\t' {
			r[i] = ' '
		}
	}
	changed := make([]bool, len(r))
	for _, s := range spans {
		if s.Kind == textdiff.SpanUnchanged {
			continue
		}
		for i := s.Start; i < s.End; i++ {
			changed[i] = true
		}
	}

	n, w := len(r), runewidth.StringWidth(string(r))
	truncated := w > width
	if truncated {
		n, w = 0, 0
		for n < len(r) && w+runewidth.RuneWidth(r[n]) <= width-1 {
			w += runewidth.RuneWidth(r[n])
			n++
		}
	}

	var b strings.Builder
	for i := 0; i < n; {
		j := i + 1
		for j < n && changed[j] == changed[i] {
			j++
		}
		if changed[i] && p.color {
			b.WriteString(style.Render(string(r[i:j])))
		} else {
			b.WriteString(string(r[i:j]))
		}
		i = j
	}
	if truncated {
		b.WriteString("…")
		w++
	}
	return b.String(), w
}
