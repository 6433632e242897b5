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

// Package grpcx converts errors returned by gRPC handlers into status
// errors.
//
// An error that carries a detail record anywhere in its chain becomes a
// status whose code is resolved by an apis.Mapper and whose details are a
// google.rpc.ErrorInfo (reason = error code, metadata = location, trace id
// and masked group) and, optionally, a google.rpc.DebugInfo holding the
// full formatted chain. Clients read them back with ExtractErrorInfo and
// ExtractDebugInfo.
package grpcx
