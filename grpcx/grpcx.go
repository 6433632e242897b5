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

package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/derrfmt/adapter"
	"dirpx.dev/derrfmt/apis"
)

// Option configures the interceptors.
type Option func(*options)

type options struct {
	debug bool
}

// WithDebugInfo controls whether a DebugInfo detail with the full formatted
// chain is attached. It is on by default.
func WithDebugInfo(on bool) Option {
	return func(o *options) { o.debug = on }
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// converts errors carrying a detail record into gRPC status errors with
// google.rpc.ErrorInfo and DebugInfo details.
//
// The provided apis.Mapper (nil means mapper.Default) maps error codes into
// gRPC codes. Errors without a detail record, including errors that already
// are gRPC statuses, are returned untouched.
func UnaryServerInterceptor(m apis.Mapper, domain string, opts ...Option) grpc.UnaryServerInterceptor {
	conv := newConverter(m, domain, opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, conv.convert(err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, domain string, opts ...Option) grpc.StreamServerInterceptor {
	conv := newConverter(m, domain, opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return conv.convert(err)
		}
		return nil
	}
}

type converter struct {
	mapper apis.Mapper
	domain string
	options
}

func newConverter(m apis.Mapper, domain string, opts []Option) converter {
	c := converter{mapper: m, domain: domain, options: options{debug: true}}
	for _, opt := range opts {
		if opt != nil {
			opt(&c.options)
		}
	}
	return c
}

// Convert turns err into a gRPC status error as the interceptors do.
func Convert(m apis.Mapper, domain string, err error, opts ...Option) error {
	return newConverter(m, domain, opts).convert(err)
}

func (c converter) convert(err error) error {
	if _, ok := gstatus.FromError(err); ok {
		// Already a status, possibly from a downstream call.
		return err
	}
	var de apis.DetailedError
	if !errors.As(err, &de) {
		// Not ours, return as-is.
		return err
	}

	st := adapter.Resolve(c.mapper, err)
	base := gstatus.New(st.GRPC, err.Error())

	details := []protoadapt.MessageV1{adapter.ErrorInfo(err, c.domain)}
	if c.debug {
		details = append(details, adapter.DebugInfo(err))
	}
	// Try to attach details. If it fails, return base.
	if with, werr := base.WithDetails(details...); werr == nil {
		return with.Err()
	}
	return base.Err()
}

// ExtractErrorInfo pulls google.rpc.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	for _, d := range details(err) {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractDebugInfo pulls google.rpc.DebugInfo out of a gRPC error, if present.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	for _, d := range details(err) {
		if dbg, ok := d.(*errdetails.DebugInfo); ok {
			return dbg, true
		}
	}
	return nil, false
}

func details(err error) []any {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil
	}
	return st.Details()
}
