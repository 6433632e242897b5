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

// Package apis defines the public Go-level contracts of derrfmt.
//
// The formatter never looks at concrete error types. It probes values for
// the small capability interfaces declared here:
//
//   - Describer: the value renders itself;
//   - DetailedError: the error carries a detail.Record;
//   - RootCausedError: the error wraps the error that caused it;
//   - CodedError: the error has a machine-readable kind.
//
// Transport adapters (HTTP, gRPC, loggers) target the Mapper interface and
// the view types instead of the root package.
//
// This package must stay lightweight: interfaces and very small view types only.
package apis
