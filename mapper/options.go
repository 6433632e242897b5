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
	"dirpx.dev/derrfmt/code"
)

// Option adjusts the builder New freezes into a Mapper.
type Option func(*builder)

// WithHTTPDefault sets the default HTTP status of c, replacing the
// library's.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.defaults.http[c] = status }
}

// WithGRPCDefault sets the default gRPC code of c. Values outside the
// canonical gRPC range resolve to codes.Unknown.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.defaults.grpc[c] = codesOf(grpc) }
}

// WithHTTPOverride pins the HTTP status of c above any default.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.overrides.http[c] = status }
}

// WithGRPCOverride pins the gRPC code of c above any default.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.overrides.grpc[c] = codesOf(grpc) }
}

// WithFallback replaces the statuses used for codes that have neither an
// override nor a default, including unknown codes.
func WithFallback(status, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = status
		b.fallbackGRPC = codesOf(grpc)
	}
}
