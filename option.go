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

package derrfmt

import (
	"dirpx.dev/derrfmt/detail"
	"dirpx.dev/derrfmt/trace"
)

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithTraceIDOption sets the trace id on the details of the error being
// constructed.
func WithTraceIDOption(id trace.ID) Option {
	return func(e *Error) *Error {
		return e.WithTraceID(id)
	}
}

// WithDetailsOption replaces the captured call site, for errors built on
// behalf of another location.
func WithDetailsOption(r detail.Record) Option {
	return func(e *Error) *Error {
		return e.WithDetails(r)
	}
}

// WithResponseOption attaches an HTTP exchange on construction.
// Intended to be used with StatusCode(...).
func WithResponseOption(resp *Response) Option {
	return func(e *Error) *Error {
		return e.WithResponse(resp)
	}
}
