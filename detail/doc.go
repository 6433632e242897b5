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

// Package detail defines Record, the provenance metadata attached to a
// derrfmt error: where it was constructed and, optionally, which trace it
// belongs to.
//
// A Record is a small comparable value. Two records built at the same call
// site with the same trace id are equal with ==, which is what the chain
// formatter relies on to avoid printing the same provenance twice.
package detail
