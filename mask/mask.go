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

// Masker applies an ordered list of rules. It is immutable once built and
// safe for concurrent use.
type Masker struct {
	rules []Rule
}

var defaultMasker = New(UUIDs, Bytes, ISODatetimes, MemoryLocations)

// New returns a Masker applying rules in the given order.
func New(rules ...Rule) *Masker {
	m := &Masker{rules: make([]Rule, len(rules))}
	copy(m.rules, rules)
	return m
}

// Default returns the Masker with the four built-in rules.
func Default() *Masker {
	return defaultMasker
}

// Mask rewrites s with the default Masker.
func Mask(s string) string {
	return defaultMasker.Mask(s)
}

// Mask applies every rule, in order, to s. A nil Masker behaves like
// Default.
func (m *Masker) Mask(s string) string {
	if m == nil {
		m = defaultMasker
	}
	for _, r := range m.rules {
		s = r.Apply(s)
	}
	return s
}

// Rules returns a copy of the rules in application order.
func (m *Masker) Rules() []Rule {
	if m == nil {
		m = defaultMasker
	}
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// With returns a new Masker applying m's rules followed by rules.
// m is not modified.
func (m *Masker) With(rules ...Rule) *Masker {
	if m == nil {
		m = defaultMasker
	}
	all := make([]Rule, 0, len(m.rules)+len(rules))
	all = append(all, m.rules...)
	all = append(all, rules...)
	return &Masker{rules: all}
}
