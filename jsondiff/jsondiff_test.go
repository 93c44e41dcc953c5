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

package jsondiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t testing.TB, s string) Node {
	t.Helper()
	n, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return n
}

func TestParse(t *testing.T) {
	n := mustParse(t, ` {"b": 1, "a": [true, null, "x"], "b": {"c": 2.5}} `)
	if n.Kind != Object {
		t.Fatalf("got kind %v, want object", n.Kind)
	}
	var keys []string
	for _, f := range n.Fields {
		keys = append(keys, f.Key)
	}
	if diff := cmp.Diff([]string{"b", "a"}, keys); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
	b, _ := n.Get("b")
	if got, want := b.String(), `{"c":2.5}`; got != want {
		t.Errorf("last duplicate should win: got %s, want %s", got, want)
	}
	a, _ := n.Get("a")
	var kinds []Kind
	for _, e := range a.Elems {
		kinds = append(kinds, e.Kind)
	}
	if diff := cmp.Diff([]Kind{Bool, Null, String}, kinds); diff != "" {
		t.Errorf("element kinds mismatch (-want +got):\n%s", diff)
	}
	if got, want := n.String(), `{"b":{"c":2.5},"a":[true,null,"x"]}`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{``, "unexpected end of JSON input"},
		{`{"a":`, "unexpected end of JSON input"},
		{`{a}`, "invalid character 'a' looking for beginning of object key string"},
		{`[1,]`, "invalid character ']' looking for beginning of value"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", tt.in)
			continue
		}
		if got := err.Error(); got != tt.want {
			t.Errorf("Parse(%q) error = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		x, y string
		want bool
	}{
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`[1,2]`, `[2,1]`, false},
		{`1`, `1.0`, false},
		{`1.0`, `1.00`, true},
		{`1e2`, `100.0`, true},
		{`-0`, `0`, true},
		{`123456789012345678901234567890`, `123456789012345678901234567890`, true},
		{`"a"`, `"a"`, true},
		{`null`, `false`, false},
		{`{"a":1}`, `{"a":1,"b":null}`, false},
	}
	for _, tt := range tests {
		x, y := mustParse(t, tt.x), mustParse(t, tt.y)
		if got := x.Equal(y); got != tt.want {
			t.Errorf("Equal(%s, %s) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Change
	}{
		{
			name: "identical",
			x:    `{"a":1}`,
			y:    `{"a":1}`,
		},
		{
			name: "value-changed",
			x:    `{"a":1}`,
			y:    `{"a":2}`,
			want: []Change{{Path: "a", Kind: ValueChanged, OldValue: "1", NewValue: "2"}},
		},
		{
			name: "field-renamed",
			x:    `{"a":1}`,
			y:    `{"b":1}`,
			want: []Change{
				{Path: "a", Kind: FieldRemoved, OldValue: "1"},
				{Path: "b", Kind: FieldAdded, NewValue: "1"},
			},
		},
		{
			name: "type-changed-at-root",
			x:    `{"a":1}`,
			y:    `[1]`,
			want: []Change{{Path: "", Kind: TypeChanged, OldValue: `{"a":1}`, NewValue: "[1]"}},
		},
		{
			name: "scalar-type-changed",
			x:    `{"a":"1"}`,
			y:    `{"a":1}`,
			want: []Change{{Path: "a", Kind: TypeChanged, OldValue: `"1"`, NewValue: "1"}},
		},
		{
			name: "nested",
			x:    `{"a":{"b":[1,2,3]},"c":true}`,
			y:    `{"a":{"b":[1,5]},"c":false}`,
			want: []Change{
				{Path: "a.b[1]", Kind: ValueChanged, OldValue: "2", NewValue: "5"},
				{Path: "a.b[2]", Kind: ArrayElementRemoved, OldValue: "3"},
				{Path: "c", Kind: ValueChanged, OldValue: "true", NewValue: "false"},
			},
		},
		{
			name: "array-grows",
			x:    `[{"id":1}]`,
			y:    `[{"id":1},{"id": 2}]`,
			want: []Change{{Path: "[1]", Kind: ArrayElementAdded, NewValue: `{"id":2}`}},
		},
		{
			name: "repeated-key-keeps-last-value",
			x:    `{"a":1,"a":2,"b":1}`,
			y:    `{"a":1,"b":{"c":[1]}}`,
			want: []Change{
				{Path: "a", Kind: ValueChanged, OldValue: "2", NewValue: "1"},
				{Path: "b", Kind: TypeChanged, OldValue: "1", NewValue: `{"c":[1]}`},
			},
		},
		{
			name: "added-fields-follow-in-order",
			x:    `{"m":0}`,
			y:    `{"z":1,"m":0,"a":2}`,
			want: []Change{
				{Path: "z", Kind: FieldAdded, NewValue: "1"},
				{Path: "a", Kind: FieldAdded, NewValue: "2"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := mustParse(t, tt.x), mustParse(t, tt.y)
			got := Compare(x, y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compare(...) result mismatch (-want +got):\n%s", diff)
			}
			if got, want := len(got) == 0, x.Equal(y); got != want {
				t.Errorf("no changes = %v, but Equal = %v", got, want)
			}
		})
	}
}

func TestPretty(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1,"b":"x"}`, "{\n  \"a\": 1,\n  \"b\": \"x\"\n}"},
		{`{ }`, "{}"},
		{`[1, 2]`, "[1, 2]"},
		{`"s"`, `"s"`},
		{`{"a":1,"a":2}`, "{\n  \"a\": 2\n}"},
		{`{"k\u00e9y": "\n", "n": -1.5e3}`, "{\n  \"k\\u00e9y\": \"\\n\",\n  \"n\": -1.5e3\n}"},
	}
	for _, tt := range tests {
		if got := Pretty(mustParse(t, tt.in)); got != tt.want {
			t.Errorf("Pretty(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStringBuiltNode(t *testing.T) {
	n := Node{Kind: Object, Fields: []Field{
		{Key: "s", Value: Node{Kind: String, Text: `a"b`}},
		{Key: "l", Value: Node{Kind: Array, Elems: []Node{{Kind: Null}, {Kind: Bool, Bool: true}, {Kind: Number, Text: "7"}}}},
	}}
	if got, want := n.String(), `{"s":"a\"b","l":[null,true,7]}`; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func BenchmarkCompare(b *testing.B) {
	x := mustParse(b, `{"name":"a","tags":["x","y","z"],"nested":{"n":1,"m":[1,2,3,4]}}`)
	y := mustParse(b, `{"name":"b","tags":["x","z"],"nested":{"n":2,"m":[1,2,3,4,5]},"extra":null}`)
	for b.Loop() {
		Compare(x, y)
	}
}
