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

package chain

import (
	"dirpx.dev/derrfmt/apis"
	"dirpx.dev/derrfmt/describe"
	"dirpx.dev/derrfmt/detail"
	"dirpx.dev/derrfmt/mask"
	"dirpx.dev/derrfmt/reflector"
)

// Section headers of the formatted output.
const (
	RootCauseHeader = "RootCause: "
	DetailsHeader   = "ErrorDetails: "
)

const nilText = "<nil>"

// Formatter renders error chains. A Formatter is immutable and safe for
// concurrent use; the zero value is not usable, build one with New.
type Formatter struct {
	masker  *mask.Masker
	resolve func(any) string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithMasker replaces the masker applied to the root cause header.
// nil keeps the default.
func WithMasker(m *mask.Masker) Option {
	return func(f *Formatter) {
		if m != nil {
			f.masker = m
		}
	}
}

// WithResolver replaces the function describing details and root causes.
// nil keeps describe.Value.
func WithResolver(fn func(any) string) Option {
	return func(f *Formatter) {
		if fn != nil {
			f.resolve = fn
		}
	}
}

// New returns a Formatter using mask.Default and describe.Value unless
// overridden.
func New(opts ...Option) *Formatter {
	f := &Formatter{masker: mask.Default(), resolve: describe.Value}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

var std = New()

// Default returns the Formatter used by the package-level functions.
func Default() *Formatter { return std }

// Parts is a formatted chain before assembly.
type Parts struct {
	// Group is the masked root cause, or the masked details when there is
	// no root cause. Equal groups denote the same kind of failure.
	Group string

	// Root is the unmasked root cause description.
	Root string

	// Details is the description of the error's own detail record.
	Details string

	// HasRoot reports whether a root cause was found.
	HasRoot bool

	// Suppressed reports that the root cause carries the same detail
	// record, so the ErrorDetails block is left out.
	Suppressed bool
}

// String assembles the parts exactly as Formatter.Format does.
func (p Parts) String() string {
	if !p.HasRoot {
		return p.Details
	}
	s := RootCauseHeader + p.Group + "\n\n" + p.Root + "\n"
	if !p.Suppressed {
		s += DetailsHeader + p.Details
	}
	return s
}

// Format renders err and its immediate root cause. Format never fails;
// Format(nil) is "<nil>".
func (f *Formatter) Format(err error) string {
	return f.Split(err).String()
}

// Split renders the pieces of err without assembling them.
func (f *Formatter) Split(err error) Parts {
	if f == nil {
		f = std
	}
	if err == nil {
		return Parts{Group: nilText, Details: nilText}
	}

	own, hasOwn := Details(err)
	p := Parts{Details: f.details(err, own, hasOwn)}

	root := RootCause(err)
	if root == nil {
		p.Group = f.masker.Mask(p.Details)
		return p
	}

	p.HasRoot = true
	p.Root = f.resolve(root)
	p.Group = f.masker.Mask(p.Root)
	if hasOwn {
		if rd, ok := Details(root); ok && rd == own {
			p.Suppressed = true
		}
	}
	return p
}

// details resolves the detail text of err. Errors without a record are
// rendered reflectively rather than through the resolver, which would
// call back into a Describe method built on this formatter.
func (f *Formatter) details(err error, r detail.Record, ok bool) string {
	if !ok {
		return reflector.Describe(err)
	}
	return f.resolve(r)
}

// Format renders err with the default Formatter.
func Format(err error) string {
	return std.Format(err)
}

// Split splits err with the default Formatter.
func Split(err error) Parts {
	return std.Split(err)
}

// Details returns the detail record err carries itself. Wrapped errors are
// not searched. An ErrorDetails that panics, such as a value method reached
// through a nil pointer, counts as no record.
func Details(err error) (r detail.Record, ok bool) {
	d, isDetailed := err.(apis.DetailedError)
	if !isDetailed {
		return detail.Record{}, false
	}
	defer func() {
		if recover() != nil {
			r, ok = detail.Record{}, false
		}
	}()
	return d.ErrorDetails(), true
}

// RootCause returns the immediate cause of err: RootCause() when err
// implements apis.RootCausedError, otherwise Unwrap() error. It returns nil
// when there is none, or when the accessor panics. Errors joining several
// causes have no single root cause.
func RootCause(err error) (root error) {
	defer func() {
		if recover() != nil {
			root = nil
		}
	}()
	switch e := err.(type) {
	case apis.RootCausedError:
		return e.RootCause()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}
	return nil
}
