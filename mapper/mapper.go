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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/derrfmt/apis"
	"dirpx.dev/derrfmt/code"
)

// New freezes the library defaults, adjusted by opts, into an immutable
// apis.Mapper. The result shares no maps with the package or the caller
// and is safe for concurrent use.
//
// New fails when a configured code is not a valid code.Code or an HTTP
// status, fallback included, lies outside 100..599.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if err := b.defaults.validate(); err != nil {
		return nil, err
	}
	if err := b.overrides.validate(); err != nil {
		return nil, err
	}
	if !validHTTP(b.fallbackHTTP) {
		return nil, fmt.Errorf("mapper: invalid HTTP fallback %d", b.fallbackHTTP)
	}

	return &mapper{
		defaults:     b.defaults.clone(),
		overrides:    b.overrides.clone(),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is New that panics on error. Intended for package-level
// declarations with static options.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var std = MustNew()

// Default returns the mapper built from the library defaults only.
func Default() apis.Mapper { return std }

// mapper resolves a code through overrides, then defaults, then the
// fallback pair. Each transport is resolved on its own.
type mapper struct {
	defaults  table
	overrides table

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves the HTTP status of c.
func (m *mapper) HTTPStatus(c code.Code) int {
	_, v := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves the gRPC code of c.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	_, v := m.resolveGRPC(c)
	return v
}

// Status resolves both transports for c.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain reports, per transport, which tier answered for c:
//
//	code="dependency"
//	http: source=override -> 503
//	grpc: source=default -> UNAVAILABLE(14)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)

	src, v := m.resolveHTTP(c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, v)

	src, g := m.resolveGRPC(c)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, strings.ToUpper(g.String()), int(g))

	return b.String()
}

func (m *mapper) resolveHTTP(c code.Code) (string, int) {
	return lookup(c, m.overrides.http, m.defaults.http, m.fallbackHTTP)
}

func (m *mapper) resolveGRPC(c code.Code) (string, codes.Code) {
	return lookup(c, m.overrides.grpc, m.defaults.grpc, m.fallbackGRPC)
}
