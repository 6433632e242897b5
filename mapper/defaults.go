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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/derrfmt/apis"
	"dirpx.dev/derrfmt/code"
)

// defaults pairs every well-known kind with its HTTP status and gRPC code.
// Callers adjust them at the boundary where a transport is produced.
var defaults = map[code.Code]apis.Status{
	// 5xx: our side or a dependency failed.
	code.Internal:   {HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
	code.Runtime:    {HTTP: http.StatusInternalServerError, GRPC: codes.Internal},
	code.Dependency: {HTTP: http.StatusBadGateway, GRPC: codes.Unavailable},
	// A remote service answered with an unexpected status. Adapters put the
	// received status on HTTP when it is a valid 4xx/5xx; gRPC has no
	// trustworthy equivalent.
	code.StatusCode: {HTTP: http.StatusBadGateway, GRPC: codes.Unknown},

	// 4xx: the caller is at fault.
	code.IllegalArgument: {HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},
	code.InvalidURL:      {HTTP: http.StatusBadRequest, GRPC: codes.InvalidArgument},
	code.IllegalState:    {HTTP: http.StatusConflict, GRPC: codes.FailedPrecondition},
}

// fallback answers codes that have no entry in any table.
var fallback = apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal}
