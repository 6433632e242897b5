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

package code

// Kinds of the convenience error variants.
//
// Transport mapping for each kind lives in derrfmt/mapper; the comments
// below only name the usual HTTP status.
const (
	// Internal is the fallback for errors that carry no kind at all.
	// Usually 500.
	Internal Code = "internal"

	// IllegalArgument reports that a caller passed a value the callee
	// cannot accept. Usually 400.
	IllegalArgument Code = "illegal_argument"

	// IllegalState reports that an operation was attempted while the
	// receiver was not in a state that allows it. Usually 409.
	IllegalState Code = "illegal_state"

	// InvalidURL reports that a URL could not be built or parsed.
	// Usually 400.
	InvalidURL Code = "invalid_url"

	// Runtime is a generic failure detected while running, with no better
	// classification. Usually 500.
	Runtime Code = "runtime"

	// StatusCode reports that a remote HTTP endpoint answered with an
	// unexpected status. The error carries the status and the response.
	// Usually 502, unless the error's own status is forwarded.
	StatusCode Code = "status_code"

	// Dependency marks a DependencyError: an external dependency failure
	// wrapped as the root cause. Usually 502.
	Dependency Code = "dependency"
)

var known = []Code{
	Internal,
	IllegalArgument,
	IllegalState,
	InvalidURL,
	Runtime,
	StatusCode,
	Dependency,
}
