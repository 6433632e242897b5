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

// Package adapter projects errors onto the shapes consumed at the edges of
// a service: resolved transport statuses, flat descriptors for structured
// logs, public views, and google.rpc error details.
//
// Every projection is computed from the error chain alone: the code comes
// from the first apis.CodedError, the location from the outermost
// apis.DetailedError, and the grouping key and description from package
// chain.
package adapter
