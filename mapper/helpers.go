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
	"google.golang.org/grpc/codes"

	"dirpx.dev/derrfmt/code"
)

// Tier names reported by Explain.
const (
	sourceOverride = "override"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

func validHTTP(v int) bool { return v >= 100 && v <= 599 }

// codesOf converts an int into a gRPC code, mapping values outside the
// canonical range to codes.Unknown.
func codesOf(v int) codes.Code {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return codes.Unknown
	}
	return codes.Code(v)
}

// lookup walks overrides, then defaults, and reports the tier that answered.
func lookup[V any](c code.Code, override, def map[code.Code]V, fb V) (string, V) {
	if v, ok := override[c]; ok {
		return sourceOverride, v
	}
	if v, ok := def[c]; ok {
		return sourceDefault, v
	}
	return sourceFallback, fb
}
