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

package mask

import "regexp"

// Placeholders written by the default rules.
const (
	UUIDPlaceholder     = "########-####-####-####-############"
	BytesPlaceholder    = "### bytes"
	DatetimePlaceholder = "####-##-##T##:##:##+####"
	MemoryPlaceholder   = "0x######"
)

const hexDigit = `[0-9a-fA-F]`

// Default rules, in the order the default Masker applies them.
var (
	// UUIDs masks canonical 8-4-4-4-12 UUIDs, any case.
	UUIDs = NewRule("uuid",
		hexDigit+`{8}-`+hexDigit+`{4}-`+hexDigit+`{4}-`+hexDigit+`{4}-`+hexDigit+`{12}`,
		UUIDPlaceholder)

	// Bytes masks byte counts: digits and spaces directly followed by "bytes".
	Bytes = NewRule("bytes", `[0-9 ]+bytes`, BytesPlaceholder)

	// ISODatetimes masks ISO-8601 datetimes with optional fractional
	// seconds and a mandatory "Z" or numeric offset (+hh, +hhmm, +hh:mm).
	ISODatetimes = NewRule("iso8601",
		`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}(?::?\d{2})?)`,
		DatetimePlaceholder)

	// MemoryLocations masks "0x" followed by any number of hex digits.
	MemoryLocations = NewRule("memory", `0x`+hexDigit+`*`, MemoryPlaceholder)
)

// Rule is a single pattern -> placeholder rewrite.
//
// The zero Rule and a Rule whose pattern does not compile are valid values
// that leave their input unchanged.
type Rule struct {
	// Name identifies the rule in diagnostics.
	Name string

	// Pattern is the RE2 pattern the rule was built from.
	Pattern string

	// Placeholder replaces every match literally; "$" has no special meaning.
	Placeholder string

	re *regexp.Regexp
}

// NewRule compiles pattern into a Rule. A pattern that fails to compile
// yields a rule that matches nothing; check Valid to detect it.
func NewRule(name, pattern, placeholder string) Rule {
	r := Rule{Name: name, Pattern: pattern, Placeholder: placeholder}
	if re, err := regexp.Compile(pattern); err == nil {
		r.re = re
	}
	return r
}

// Valid reports whether the rule's pattern compiled.
func (r Rule) Valid() bool {
	return r.re != nil
}

// Apply rewrites every non-overlapping match of the rule in s.
func (r Rule) Apply(s string) string {
	if r.re == nil || s == "" {
		return s
	}
	return r.re.ReplaceAllLiteralString(s, r.Placeholder)
}
