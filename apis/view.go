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

package apis

// ErrorView is the rendering of an error that is safe to hand to a logging
// sink or an API client.
//
// Group is the masked form of the error's first line, suitable as a
// grouping key; Description is the full, unmasked chain rendering.
type ErrorView struct {
	// Code is the canonical error kind, e.g. "illegal_argument".
	Code string `json:"code"`

	// Message is the error's own Error() string.
	Message string `json:"message,omitempty"`

	// Group is the masked root-cause text (or masked detail text for
	// errors without a root cause). Identical failures share it.
	Group string `json:"group,omitempty"`

	// Description is the full formatted chain, unmasked.
	Description string `json:"description,omitempty"`

	// Location is "file:line" of the construction site, when known.
	Location string `json:"location,omitempty"`

	// TraceID is the optional trace identifier of the error.
	TraceID string `json:"traceId,omitempty"`
}
