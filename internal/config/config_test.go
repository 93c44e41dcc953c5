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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/textcmp"
	"znkr.io/textcmp/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "context",
			opts: []config.Option{
				textcmp.Context(5),
			},
			want: config.Config{
				Context: 5,
				Mode:    config.ModeText,
			},
		},
		{
			name: "negative-context",
			opts: []config.Option{
				textcmp.Context(-1),
			},
			want: config.Config{
				Context: 0,
			},
		},
		{
			name: "ignore-case-context",
			opts: []config.Option{
				textcmp.IgnoreCase(),
				textcmp.Context(5),
			},
			want: config.Config{
				Context:    5,
				IgnoreCase: true,
			},
		},
		{
			name: "context-override",
			opts: []config.Option{
				textcmp.Context(5),
				textcmp.IgnoreWhitespace(),
				textcmp.Context(1),
			},
			want: config.Config{
				Context:          1,
				IgnoreWhitespace: true,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				textcmp.Context(5),
				textcmp.IgnoreCase(),
				textcmp.IgnoreWhitespace(),
				textcmp.IgnoreLineEndings(),
			},
			want: config.Config{
				Context:           5,
				IgnoreLineEndings: true,
				IgnoreWhitespace:  true,
				IgnoreCase:        true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    config.Mode
		wantErr bool
	}{
		{"text", config.ModeText, false},
		{"JSON", config.ModeJSON, false},
		{"Xml", config.ModeXML, false},
		{"code", config.ModeCode, false},
		{"yaml", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := config.ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeText(t *testing.T) {
	for m := config.ModeText; m <= config.ModeCode; m++ {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got config.Mode
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if got != m {
			t.Errorf("round trip of %v returned %v", m, got)
		}
	}
}
