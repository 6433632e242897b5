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

// Package derrfmt renders application errors, with their immediate root
// cause, as deterministic log lines whose first line groups well under
// prefix search.
//
// The formatting pipeline lives in the chain, describe, reflector and mask
// packages; this package provides the error values that feed it and the
// top-level entry points Describe, Described and Format.
package derrfmt

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"dirpx.dev/derrfmt/chain"
	"dirpx.dev/derrfmt/code"
	"dirpx.dev/derrfmt/describe"
	"dirpx.dev/derrfmt/detail"
	"dirpx.dev/derrfmt/trace"
)

// Error is a classified application error carrying the place it was built.
//
// It carries:
//   - Code: kind of failure from derrfmt/code (required);
//   - Message: human-oriented description;
//   - Details: where the error was constructed, and an optional trace id;
//   - Status, Response: the HTTP exchange behind a status_code error.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Code is the kind of failure, e.g. "illegal_argument".
	Code code.Code `json:"code"`

	// Message is a human-readable explanation.
	Message string `json:"message"`

	// Details records the construction site.
	Details detail.Record `json:"details"`

	// Status is the HTTP status that was received. Only set for
	// code.StatusCode errors.
	Status int `json:"status,omitempty"`

	// Response is the exchange that produced Status, if captured.
	Response *Response `json:"-"`
}

// Response describes an HTTP exchange behind a status_code error.
type Response struct {
	Request  *http.Request
	Response *http.Response

	// Body is the (possibly truncated) response payload.
	Body []byte

	// Elapsed is the time between sending the request and reading Body.
	Elapsed time.Duration
}

// E builds an Error of kind c and records the caller as its details.
//
// Usage:
//
//	return derrfmt.E(code.IllegalState, "queue closed",
//	    derrfmt.WithTraceIDOption(tid),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c code.Code, msg string, opts ...Option) *Error {
	return build(&Error{Code: c, Message: msg, Details: detail.Here(1)}, opts)
}

// IllegalArgument reports an invalid argument passed by the caller.
func IllegalArgument(msg string, opts ...Option) *Error {
	return build(&Error{Code: code.IllegalArgument, Message: msg, Details: detail.Here(1)}, opts)
}

// IllegalState reports an operation attempted in the wrong state.
func IllegalState(msg string, opts ...Option) *Error {
	return build(&Error{Code: code.IllegalState, Message: msg, Details: detail.Here(1)}, opts)
}

// InvalidURL reports a URL that could not be parsed or used.
func InvalidURL(msg string, opts ...Option) *Error {
	return build(&Error{Code: code.InvalidURL, Message: msg, Details: detail.Here(1)}, opts)
}

// Runtime reports an unexpected runtime failure.
func Runtime(msg string, opts ...Option) *Error {
	return build(&Error{Code: code.Runtime, Message: msg, Details: detail.Here(1)}, opts)
}

// StatusCode reports an unexpected HTTP status received from a remote
// service. resp may be nil.
func StatusCode(status int, resp *Response, opts ...Option) *Error {
	e := &Error{
		Code:     code.StatusCode,
		Message:  http.StatusText(status),
		Details:  detail.Here(1),
		Status:   status,
		Response: resp,
	}
	return build(e, opts)
}

func build(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// or, for status_code errors:
//
//	status_code: <status>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Code == code.StatusCode {
		return fmt.Sprintf("%s: %d: %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() detail.Record {
	if e == nil {
		return detail.Record{}
	}
	return e.Details
}

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string {
	if e == nil {
		return ""
	}
	return e.Code.String()
}

// WithTraceID returns a shallow copy of e whose details carry id.
func (e *Error) WithTraceID(id trace.ID) *Error {
	cp := *e
	cp.Details = cp.Details.WithTraceID(id)
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetails returns a shallow copy of e with the given details, replacing
// the captured call site.
func (e *Error) WithDetails(r detail.Record) *Error {
	cp := *e
	cp.Details = r
	return &cp
}

// WithResponse returns a shallow copy of e with the HTTP exchange attached.
func (e *Error) WithResponse(resp *Response) *Error {
	cp := *e
	cp.Response = resp
	return &cp
}

// DetailedError records where an underlying error was observed.
//
// Its description, and its %+v rendering, is the chain format: the masked
// and verbatim root cause followed by its own details.
type DetailedError struct {
	Cause   error         `json:"cause"`
	Details detail.Record `json:"details"`
}

// Wrap attaches the caller's location to cause. It returns nil when cause
// is nil.
func Wrap(cause error, opts ...detail.Option) error {
	if cause == nil {
		return nil
	}
	return &DetailedError{Cause: cause, Details: detail.Here(1, opts...)}
}

// Error returns "<file>:<line>: <cause>".
func (e *DetailedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	cause := "<nil>"
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	if loc := e.Details.Location(); loc != "" {
		return loc + ": " + cause
	}
	return cause
}

// RootCause implements apis.RootCausedError.
func (e *DetailedError) RootCause() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Unwrap enables errors.Is / errors.As through the cause.
func (e *DetailedError) Unwrap() error { return e.RootCause() }

// ErrorDetails implements apis.DetailedError.
func (e *DetailedError) ErrorDetails() detail.Record {
	if e == nil {
		return detail.Record{}
	}
	return e.Details
}

// Describe implements apis.Describer with the chain format.
func (e *DetailedError) Describe() string {
	if e == nil {
		return "<nil>"
	}
	return chain.Format(e)
}

// Format implements fmt.Formatter: %+v is the chain format, %s and %v the
// one-line Error text.
func (e *DetailedError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, e.Describe)
}

// DependencyError is a DetailedError whose cause is a failing external
// dependency. It reports code.Dependency.
type DependencyError struct {
	*DetailedError
}

// Dependency attaches the caller's location to a dependency failure. It
// returns nil when cause is nil.
func Dependency(cause error, opts ...detail.Option) error {
	if cause == nil {
		return nil
	}
	return &DependencyError{&DetailedError{Cause: cause, Details: detail.Here(1, opts...)}}
}

// Error returns "dependency: <file>:<line>: <cause>".
func (e *DependencyError) Error() string {
	if e == nil || e.DetailedError == nil {
		return "<nil>"
	}
	return code.Dependency.String() + ": " + e.DetailedError.Error()
}

// ErrorCode implements apis.CodedError.
func (e *DependencyError) ErrorCode() string { return code.Dependency.String() }

// Format implements fmt.Formatter, see DetailedError.Format.
func (e *DependencyError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, func() string {
		if e == nil || e.DetailedError == nil {
			return "<nil>"
		}
		return chain.Format(e)
	})
}

func formatError(s fmt.State, verb rune, err error, verbose func() string) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, verbose())
			return
		}
		_, _ = io.WriteString(s, err.Error())
	case 's':
		_, _ = io.WriteString(s, err.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", err.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, err.Error())
	}
}

// Describe returns the description of v: its own Describe method when it
// has one, a reflective rendering otherwise. ok is false only for an empty
// description.
func Describe(v any) (string, bool) {
	return describe.Optional(v)
}

// Described is Describe for errors. A nil error has no description.
func Described(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	return describe.Optional(err)
}

// Format renders err and its immediate root cause, see package chain.
func Format(err error) string {
	return chain.Format(err)
}

// OrErr dereferences v, or returns err when v is nil.
//
//	cfg, err := derrfmt.OrErr(lookup(name), derrfmt.IllegalArgument("unknown config "+name))
func OrErr[T any](v *T, err error) (T, error) {
	if v == nil {
		var zero T
		return zero, err
	}
	return *v, nil
}
