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

package adapter

import (
	"errors"
	"fmt"

	"dirpx.dev/derrfmt"
	"dirpx.dev/derrfmt/apis"
	"dirpx.dev/derrfmt/chain"
	"dirpx.dev/derrfmt/code"
	"dirpx.dev/derrfmt/detail"
	"dirpx.dev/derrfmt/mapper"
)

// CodeOf returns the kind of err: the first apis.CodedError in its chain
// with a valid code, or code.Internal. A nil error has code.Empty.
func CodeOf(err error) code.Code {
	if err == nil {
		return code.Empty
	}
	if ce, ok := as[apis.CodedError](err); ok {
		if c, perr := code.Parse(errorCode(ce)); perr == nil {
			return c
		}
	}
	return code.Internal
}

// as is errors.As for a target type. An Unwrap that panics while the chain
// is walked ends the search without a match.
func as[T any](err error) (target T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			target, ok = zero, false
		}
	}()
	ok = errors.As(err, &target)
	return target, ok
}

func errorCode(ce apis.CodedError) (c string) {
	defer func() {
		if recover() != nil {
			c = ""
		}
	}()
	return ce.ErrorCode()
}

// Resolve maps err to transport statuses with m, or mapper.Default when m
// is nil.
//
// A status_code error that carries the 4xx/5xx status it received keeps
// that status on HTTP, so a proxied 404 stays a 404.
func Resolve(m apis.Mapper, err error) apis.Status {
	if m == nil {
		m = mapper.Default()
	}
	c := CodeOf(err)
	st := m.Status(c)
	if c == code.StatusCode {
		if e, ok := as[*derrfmt.Error](err); ok && e != nil && e.Status >= 400 && e.Status <= 599 {
			st.HTTP = e.Status
		}
	}
	return st
}

// Locate returns the detail record of the outermost error in err's chain
// that carries one.
func Locate(err error) (detail.Record, bool) {
	de, ok := as[apis.DetailedError](err)
	if !ok {
		return detail.Record{}, false
	}
	return chain.Details(de)
}

// ToDescriptor converts an error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the logical code, the masked grouping key and the
// concrete transport statuses (HTTP and gRPC).
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:       CodeOf(err).String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Group:      chain.Split(err).Group,
	}
	if r, ok := Locate(err); ok {
		d.File = r.File
		d.Function = r.Function
		d.Line = r.Line
		d.TraceID = r.TraceID.String()
	}
	return d
}

// ToView converts an error into a public ErrorView. This function performs
// no automatic redaction or filtering; the description is the full,
// unmasked chain.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	p := chain.Split(err)
	v := apis.ErrorView{
		Code:        CodeOf(err).String(),
		Message:     fmt.Sprint(err),
		Group:       p.Group,
		Description: p.String(),
	}
	if r, ok := Locate(err); ok {
		v.Location = r.Location()
		v.TraceID = r.TraceID.String()
	}
	return v
}
