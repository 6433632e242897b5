/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated kind of a convenience error, e.g.
// "illegal_argument" or "status_code".
//
// It is a separate type (not just string) so that the error kind surfaced
// in logs, HTTP bodies and gRPC ErrorInfo reasons is always normalized.
type Code string

// MinLength and MaxLength bound the length of a canonical code.
const (
	// MinLength rejects ambiguous one- and two-letter kinds.
	MinLength = 3

	// MaxLength keeps kinds short enough to be used as log group keys.
	MaxLength = 64
)

// codeFmt is the canonical pattern for codes: a lowercase ASCII letter
// followed by 2..63 lowercase letters, digits or underscores.
//
// The {2,63} quantifier is tied to MinLength / MaxLength.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated
// as a code.
var ErrCodeInvalid = errors.New("derrfmt: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. Errors that carry it are reported as
// Internal by the adapters.
var Empty Code = ""

// Parse normalizes and validates s.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse, meant for package-level
// declarations of custom kinds.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims spaces, lowercases and turns '-' and ' ' into '_'.
//
// Callers building a code from a Go identifier such as "IllegalArgument"
// should pass it through Parse, which does not split camel case: only
// already-separated words are supported.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate checks whether c is canonical. Empty is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// IsKnown reports whether c is one of the kinds declared by this package.
func IsKnown(c Code) bool {
	for _, k := range known {
		if k == c {
			return true
		}
	}
	return false
}

// Known returns a copy of the kinds declared by this package, in declaration order.
func Known() []Code {
	out := make([]Code, len(known))
	copy(out, known)
	return out
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// normalized before validation.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
