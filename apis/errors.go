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

package apis

import "dirpx.dev/derrfmt/detail"

// Describer is implemented by values that provide their own stable,
// human-authored description.
//
// The formatter prefers Describe over the generic reflective rendering and
// trusts its formatting verbatim. Implementations should not include
// volatile data they expect to be masked unless it matches one of the
// masking rules.
type Describer interface {
	Describe() string
}

// DetailedError is an error that carries provenance metadata.
//
// ErrorDetails must be a pure accessor: the formatter may call it more than
// once and compares results with ==.
type DetailedError interface {
	error

	// ErrorDetails returns the record built where the error was constructed.
	ErrorDetails() detail.Record
}

// RootCausedError is an error that was caused by another error.
//
// Implementations SHOULD return the direct, immediate cause. A nil return
// means "no root cause", so a single type can expose the capability
// conditionally.
type RootCausedError interface {
	error

	// RootCause returns the wrapped error, or nil.
	RootCause() error
}

// CodedError is an error classified into a machine-readable kind, such as
// "illegal_argument" or "status_code".
//
// The returned value SHOULD already be canonical according to
// derrfmt/code. Adapters treat unknown or empty codes as internal errors.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error kind.
	ErrorCode() string
}
