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

// Package mask rewrites volatile substrings of a rendered error into fixed
// placeholders so that semantically identical errors produce identical
// text.
//
// Log search tools commonly bucket messages by a literal prefix. A message
// such as
//
//	read 512 bytes from 0xc000012345 at 2025-03-01T10:00:00Z
//
// would land in a new bucket on every occurrence; masked, it becomes
//
//	read### bytes from 0x###### at ####-##-##T##:##:##+####
//
// The default Masker applies four rules in a fixed order: UUIDs, byte
// counts, ISO-8601 datetimes and memory addresses. Each rule rewrites every
// non-overlapping match. A rule whose pattern does not compile is a no-op,
// so masking never fails.
//
// Additional rules can be appended with Masker.With, or loaded from YAML:
//
//	rules:
//	  - name: ipv4
//	    pattern: '\d+\.\d+\.\d+\.\d+'
//	    placeholder: '#.#.#.#'
package mask
