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

// ErrorDescriptor is a flat, transport-friendly description of a single
// error occurrence together with its resolved statuses.
//
// It is meant for structured logging and message-bus propagation: every
// field is a scalar so that it maps one-to-one onto log attributes.
type ErrorDescriptor struct {
	// Code is the canonical error kind.
	Code string `json:"code"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Group is the masked grouping key, see ErrorView.Group.
	Group string `json:"group,omitempty"`

	// File, Function and Line locate the construction site.
	File     string `json:"file,omitempty"`
	Function string `json:"function,omitempty"`
	Line     int    `json:"line,omitempty"`

	// TraceID is the optional trace identifier.
	TraceID string `json:"trace_id,omitempty"`
}
