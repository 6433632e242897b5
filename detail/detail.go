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

package detail

import (
	"runtime"
	"strconv"
	"strings"

	"dirpx.dev/derrfmt/trace"
)

// Record is the immutable provenance of an error.
//
// Keep every field comparable: equality must stay structural.
type Record struct {
	// File is the source file that built the error, as "pkg/file.go".
	File string `json:"file"`

	// Function is the function that built the error, as "pkg.Func" or
	// "pkg.(*T).Method".
	Function string `json:"function"`

	// Line is the line of File where the error was built.
	Line int `json:"line"`

	// TraceID optionally ties the error to a distributed trace.
	TraceID trace.ID `json:"traceId,omitempty"`
}

// Option adjusts a Record while it is being built.
type Option func(*Record)

// WithTraceID sets the trace id of the record being built.
func WithTraceID(id trace.ID) Option {
	return func(r *Record) { r.TraceID = id }
}

// New builds a Record from explicit values.
func New(file, function string, line int, opts ...Option) Record {
	r := Record{File: file, Function: function, Line: line}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Here captures the call site of its caller. skip=0 records the function
// calling Here; each increment moves one frame further out, which lets
// constructors report their own caller instead of themselves.
//
// When the frame cannot be resolved, the record only carries the options.
func Here(skip int, opts ...Option) Record {
	var r Record
	var pcs [1]uintptr
	// +2 skips runtime.Callers and Here.
	if runtime.Callers(skip+2, pcs[:]) > 0 {
		fr, _ := runtime.CallersFrames(pcs[:]).Next()
		r.File = shortFile(fr.File)
		r.Function = shortFunction(fr.Function)
		r.Line = fr.Line
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithTraceID returns a copy of r with the given trace id.
func (r Record) WithTraceID(id trace.ID) Record {
	r.TraceID = id
	return r
}

// Equal reports whether r and o carry the same provenance.
func (r Record) Equal(o Record) bool {
	return r == o
}

// IsZero reports whether r carries no information at all.
func (r Record) IsZero() bool {
	return r == Record{}
}

// Location returns "file:line", or "" for a record without a file.
func (r Record) Location() string {
	if r.File == "" {
		return ""
	}
	return r.File + ":" + strconv.Itoa(r.Line)
}

// shortFile keeps the last two path elements: "pkg/file.go".
func shortFile(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	if j := strings.LastIndexByte(path[:i], '/'); j >= 0 {
		return path[j+1:]
	}
	return path
}

// shortFunction drops the import path prefix of a fully-qualified
// function name: "dirpx.dev/derrfmt/detail.Here" -> "detail.Here".
func shortFunction(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
