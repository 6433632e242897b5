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

// Package mapper provides deterministic, immutable mappings from error kinds
// (dirpx.dev/derrfmt/code) to transport-level statuses for HTTP and gRPC.
//
// Transport layers (HTTP handlers, gRPC servers) need to turn an error kind
// into concrete status codes. Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per code;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. fallback (500 / codes.Internal unless configured).
//
// # Library defaults
//
//	illegal_argument, invalid_url  400 / InvalidArgument
//	illegal_state                  409 / FailedPrecondition
//	runtime, internal              500 / Internal
//	dependency                     502 / Unavailable
//	status_code                    502 / Unknown
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Dependency, http.StatusServiceUnavailable),
//	)
//	if err != nil {
//	    // invalid code or status
//	}
//
//	st := m.Status(code.Dependency)
//	// st.HTTP == 503, st.GRPC == codes.Unavailable
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a code was resolved,
// including which tier matched. It is intended for inspection and logging,
// not for stable machine parsing.
package mapper
