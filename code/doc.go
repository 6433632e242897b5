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

// Package code provides parsing, normalization and validation for the kinds
// of derrfmt convenience errors.
//
// A code is short, lowercased and underscore-separated, so that it can be
// used verbatim as a log field, an ErrorInfo reason or a map key in the
// transport mapper.
//
// Empty codes ("") are NOT valid. Adapters report an error without a code
// as Internal.
package code
