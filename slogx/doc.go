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

// Package slogx renders errors as structured log/slog values.
//
// An error logged through Attr, Value or a Handler becomes a group:
//
//	err.message   the Error() text
//	err.code      the error kind
//	err.group     masked grouping key
//	err.details   the full chain, see package chain
//	err.location  "file:line" of the construction site, when known
//	err.trace_id  when present
//
// Handler applies the rendering to every error-valued attribute, so existing
// slog.Any("err", err) call sites need no change.
package slogx
