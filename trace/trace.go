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

package trace

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ID is the canonical, validated representation of a trace identifier.
//
// Accepted forms include W3C trace ids ("4bf92f3577b34da6a3ce929d0e0e4736"),
// UUIDs, and dotted or colon-separated request ids ("req:edge-1.42").
type ID string

const (
	// MinLength is the minimum length of a non-empty ID. The empty ID is
	// still valid and means "not provided".
	MinLength = 4

	// MaxLength is the maximum length of an ID.
	MaxLength = 128
)

// idFmt accepts an alphanumeric first character followed by alphanumerics
// and the separators '.', '_', ':', '/' and '-'. No whitespace.
const idFmt = `^[A-Za-z0-9][A-Za-z0-9._:/-]*$`

var idRe = regexp.MustCompile(idFmt)

var (
	// ErrTraceIDInvalidFormat is returned when an ID contains characters
	// outside of the accepted set.
	ErrTraceIDInvalidFormat = errors.New("derrfmt: invalid trace id format")
	// ErrTraceIDInvalidLength is returned when an ID is too short or too long.
	ErrTraceIDInvalidLength = errors.New("derrfmt: invalid trace id length")
)

var (
	_ encoding.TextMarshaler   = (*ID)(nil)
	_ encoding.TextUnmarshaler = (*ID)(nil)
)

// Empty is the zero-value ID: no trace.
var Empty ID = ""

// New returns a fresh random ID in canonical UUID form.
func New() ID {
	return ID(uuid.NewString())
}

// FromUUID returns the canonical string form of u as an ID.
func FromUUID(u uuid.UUID) ID {
	return ID(u.String())
}

// Normalize trims surrounding whitespace. Trace ids are case-sensitive,
// so no other transformation is applied.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Parse normalizes and validates s. The empty string yields Empty
// without error.
func Parse(s string) (ID, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return ID(s), nil
}

// MustParse is the panic-on-error variant of Parse.
//
// Unlike Parse it does not accept the empty string.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if id == Empty {
		panic("derrfmt: empty trace id in MustParse")
	}
	return id
}

// Validate checks whether id is canonical. Empty is valid.
func Validate(id ID) error {
	if id == Empty {
		return nil
	}
	return validate(string(id))
}

// IsEmpty reports whether no trace id was provided.
func (id ID) IsEmpty() bool {
	return id == Empty
}

// String returns the ID as is.
func (id ID) String() string {
	return string(id)
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an
// empty slice.
func (id ID) MarshalText() ([]byte, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}
	if id == Empty {
		return []byte{}, nil
	}
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrTraceIDInvalidLength
	}
	if !idRe.MatchString(s) {
		return ErrTraceIDInvalidFormat
	}
	return nil
}
