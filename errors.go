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
	"errors"
	"strings"
)

// Kind classifies an [Error].
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind -linecomment
type Kind int

const (
	InvalidInput Kind = iota // invalid input
	JSONParse                // invalid JSON
	Processing               // processing error
)

// Error is the error type returned by this package.
//
// An InvalidInput error is only returned by [Validate]. A JSONParse error doesn't fail a
// comparison, it's reported in [JSONResult]. Any other failure during a comparison is reported as
// a Processing error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // Underlying error, may be nil.
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Code returns the error code reported to clients of the comparison service.
func (e *Error) Code() string {
	if e.Kind == InvalidInput {
		return "DTK-3001"
	}
	return "DTK-3002"
}

// Validate checks that both texts are suitable inputs for a comparison, i.e., that neither is
// empty or consists of whitespace only.
//
// The comparison functions don't validate their inputs. Front ends that want to reject empty
// inputs call Validate first.
func Validate(text1, text2 string) error {
	if strings.TrimSpace(text1) == "" {
		return &Error{Kind: InvalidInput, Msg: "Text1 cannot be null or empty"}
	}
	if strings.TrimSpace(text2) == "" {
		return &Error{Kind: InvalidInput, Msg: "Text2 cannot be null or empty"}
	}
	return nil
}

// IsKind reports whether err is an [*Error] of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
