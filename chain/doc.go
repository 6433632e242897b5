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

// Package chain formats an error and its immediate root cause as a single,
// log-friendly string.
//
// The output of Format for an error with a root cause is
//
//	RootCause: <masked root cause>
//
//	<root cause>
//	ErrorDetails: <details>
//
// The first line is masked (see package mask) so that log search can
// bucket identical failures by prefix; the verbatim root cause follows it.
// The ErrorDetails block is left out when the root cause carries a detail
// record equal to the error's own. An error without a root cause formats
// as its details alone.
//
// Only the immediate cause is walked. A cause that describes itself (for
// example another chained error) contributes its own description verbatim.
//
// Root causes are discovered through apis.RootCausedError and, failing
// that, a single-error Unwrap method. Details come from apis.DetailedError;
// an error without them is rendered reflectively.
package chain
