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

import "strconv"

// ChangeKind is the kind of a structural change.
type ChangeKind int

const (
	TypeChanged         ChangeKind = iota // TYPE_CHANGED
	ValueChanged                          // VALUE_CHANGED
	FieldAdded                            // FIELD_ADDED
	FieldRemoved                          // FIELD_REMOVED
	ArrayElementAdded                     // ARRAY_ELEMENT_ADDED
	ArrayElementRemoved                   // ARRAY_ELEMENT_REMOVED
)

func (k ChangeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Change is a single difference between two JSON documents.
type Change struct {
	// Path to the node that changed. Object fields are separated by a dot, array indices are
	// written as [i]. The root is the empty path.
	Path string `json:"path" yaml:"path"`

	Kind ChangeKind `json:"type" yaml:"type"`

	// Compact JSON of the value before and after the change. Empty if there is no such value, e.g.,
	// OldValue of an added field.
	OldValue string `json:"oldValue,omitempty" yaml:"oldValue,omitempty"`
	NewValue string `json:"newValue,omitempty" yaml:"newValue,omitempty"`
}

// Compare returns the structural changes that turn x into y.
//
// Objects are compared field by field: fields of x are visited first in document order, followed by
// the fields only present in y. Arrays are compared index by index; there is no attempt to detect
// moved or inserted elements. The result is empty iff x.Equal(y).
func Compare(x, y Node) []Change {
	var changes []Change
	compare(&changes, x, y, "")
	return changes
}

func compare(changes *[]Change, x, y Node, path string) {
	if x.Kind != y.Kind {
		*changes = append(*changes, Change{Path: path, Kind: TypeChanged, OldValue: x.String(), NewValue: y.String()})
		return
	}
	switch x.Kind {
	case Object:
		for _, f := range x.Fields {
			p := field(path, f.Key)
			if v, ok := y.Get(f.Key); ok {
				compare(changes, f.Value, v, p)
			} else {
				*changes = append(*changes, Change{Path: p, Kind: FieldRemoved, OldValue: f.Value.String()})
			}
		}
		for _, f := range y.Fields {
			if _, ok := x.Get(f.Key); !ok {
				*changes = append(*changes, Change{Path: field(path, f.Key), Kind: FieldAdded, NewValue: f.Value.String()})
			}
		}
	case Array:
		for i := range max(len(x.Elems), len(y.Elems)) {
			p := path + "[" + strconv.Itoa(i) + "]"
			switch {
			case i < len(x.Elems) && i < len(y.Elems):
				compare(changes, x.Elems[i], y.Elems[i], p)
			case i < len(x.Elems):
				*changes = append(*changes, Change{Path: p, Kind: ArrayElementRemoved, OldValue: x.Elems[i].String()})
			default:
				*changes = append(*changes, Change{Path: p, Kind: ArrayElementAdded, NewValue: y.Elems[i].String()})
			}
		}
	default:
		if !x.Equal(y) {
			*changes = append(*changes, Change{Path: path, Kind: ValueChanged, OldValue: x.String(), NewValue: y.String()})
		}
	}
}

func field(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
