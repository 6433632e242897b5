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

// Package trace provides the optional trace identifier carried by a
// detail record.
//
// A trace ID lets an operator follow one failure across services. It is
// optional: the empty ID means "no trace" and is always valid. Non-empty IDs
// are validated so that they are safe to print on a single log line and to
// use as a gRPC metadata value.
package trace
