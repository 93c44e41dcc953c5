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

// Package jsondiff compares two JSON documents structurally.
//
// Documents are parsed into a tree of [Node] values that keeps the order of object fields. [Compare]
// walks both trees in parallel and reports every difference together with the path to the node
// where it occurs.
package jsondiff

import (
	"encoding/json"
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind is the type of a JSON value.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind,ChangeKind -linecomment
type Kind int

const (
	Null   Kind = iota // null
	Bool               // boolean
	Number             // number
	String             // string
	Array              // array
	Object             // object
)

// Node is a parsed JSON value.
type Node struct {
	Kind Kind

	// Value of a Bool node.
	Bool bool

	// Literal of a Number node or the unquoted value of a String node.
	Text string

	// Elements of an Array node.
	Elems []Node

	// Fields of an Object node in document order. Keys are unique, a repeated key replaces the value
	// of the first occurrence.
	Fields []Field

	raw string // source literal of a Number or String node
}

// Field is a key-value pair of an object.
type Field struct {
	Key   string
	Value Node

	raw string // quoted key as written in the source
}

// Parse parses s as a single JSON value.
func Parse(s string) (Node, error) {
	if !gjson.Valid(s) {
		return Node{}, syntaxError(s)
	}
	return build(gjson.Parse(s)), nil
}

// gjson only reports if a document is valid, the decoder from the standard library is used to
// describe what's wrong with it.
func syntaxError(s string) error {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return err
	}
	return errors.New("malformed JSON")
}

func build(r gjson.Result) Node {
	var n Node
	switch r.Type {
	case gjson.Null:
		n.Kind = Null
	case gjson.False, gjson.True:
		n.Kind = Bool
		n.Bool = r.Type == gjson.True
	case gjson.Number:
		n.Kind = Number
		n.Text = r.Raw
		n.raw = r.Raw
	case gjson.String:
		n.Kind = String
		n.Text = r.Str
		n.raw = r.Raw
	case gjson.JSON:
		if r.IsArray() {
			n.Kind = Array
			n.Elems = []Node{}
			r.ForEach(func(_, v gjson.Result) bool {
				n.Elems = append(n.Elems, build(v))
				return true
			})
			break
		}
		n.Kind = Object
		n.Fields = []Field{}
		index := make(map[string]int)
		r.ForEach(func(k, v gjson.Result) bool {
			if i, ok := index[k.Str]; ok {
				n.Fields[i].Value = build(v)
				return true
			}
			index[k.Str] = len(n.Fields)
			n.Fields = append(n.Fields, Field{Key: k.Str, Value: build(v), raw: k.Raw})
			return true
		})
	}
	return n
}

// Get returns the value of the field key of an object node.
func (n Node) Get(key string) (Node, bool) {
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Node{}, false
}

// Equal reports whether n and m are the same JSON value. Object fields are compared irrespective of
// their order. Integer literals are compared as integers and other numbers as floating point
// values, an integer never equals a floating point number ("1" != "1.0").
func (n Node) Equal(m Node) bool {
	if n.Kind != m.Kind {
		return false
	}
	switch n.Kind {
	case Null:
		return true
	case Bool:
		return n.Bool == m.Bool
	case Number:
		return numbersEqual(n.Text, m.Text)
	case String:
		return n.Text == m.Text
	case Array:
		if len(n.Elems) != len(m.Elems) {
			return false
		}
		for i := range n.Elems {
			if !n.Elems[i].Equal(m.Elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(n.Fields) != len(m.Fields) {
			return false
		}
		for _, f := range n.Fields {
			v, ok := m.Get(f.Key)
			if !ok || !f.Value.Equal(v) {
				return false
			}
		}
		return true
	default:
		panic("never reached")
	}
}

func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}
	if isInteger(a) != isInteger(b) {
		return false
	}
	if isInteger(a) {
		x, okx := new(big.Int).SetString(a, 10)
		y, oky := new(big.Int).SetString(b, 10)
		return okx && oky && x.Cmp(y) == 0
	}
	x, errx := strconv.ParseFloat(a, 64)
	y, erry := strconv.ParseFloat(b, 64)
	return errx == nil && erry == nil && x == y
}

func isInteger(lit string) bool {
	return !strings.ContainsAny(lit, ".eE")
}

// String returns the compact JSON encoding of n. Only the surviving value of a repeated key is
// encoded.
func (n Node) String() string {
	return string(pretty.Ugly(n.appendJSON(nil)))
}

func (n Node) appendJSON(b []byte) []byte {
	switch n.Kind {
	case Null:
		return append(b, "null"...)
	case Bool:
		return strconv.AppendBool(b, n.Bool)
	case Number:
		return append(b, n.Text...)
	case String:
		if n.raw != "" {
			return append(b, n.raw...)
		}
		return appendQuoted(b, n.Text)
	case Array:
		b = append(b, '[')
		for i, e := range n.Elems {
			if i > 0 {
				b = append(b, ',')
			}
			b = e.appendJSON(b)
		}
		return append(b, ']')
	case Object:
		b = append(b, '{')
		for i, f := range n.Fields {
			if i > 0 {
				b = append(b, ',')
			}
			if f.raw != "" {
				b = append(b, f.raw...)
			} else {
				b = appendQuoted(b, f.Key)
			}
			b = append(b, ':')
			b = f.Value.appendJSON(b)
		}
		return append(b, '}')
	default:
		panic("never reached")
	}
}

// appendQuoted quotes strings of nodes that weren't parsed from a document.
func appendQuoted(b []byte, s string) []byte {
	q, err := json.Marshal(s)
	if err != nil {
		panic(err) // strings always marshal
	}
	return append(b, q...)
}

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Pretty returns an indented JSON encoding of n without a trailing newline.
func Pretty(n Node) string {
	out := pretty.PrettyOptions(pretty.Ugly(n.appendJSON(nil)), prettyOptions)
	return strings.TrimSuffix(string(out), "\n")
}
