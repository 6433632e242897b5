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

package describe

import (
	"dirpx.dev/derrfmt/apis"
	"dirpx.dev/derrfmt/reflector"
)

// Value returns the description of v: v.Describe() when v implements
// apis.Describer, the reflective rendering otherwise.
//
// A Describe method that panics, typically a method with a value receiver
// reached through a nil pointer, degrades to the reflective rendering.
func Value(v any) string {
	if d, ok := v.(apis.Describer); ok {
		if s, ok := custom(d); ok {
			return s
		}
	}
	return reflector.Describe(v)
}

// Optional is Value with an explicit absence: ok is false only when the
// resolved description is empty.
func Optional(v any) (string, bool) {
	s := Value(v)
	return s, s != ""
}

// Is reports whether v provides its own description.
func Is(v any) bool {
	_, ok := v.(apis.Describer)
	return ok
}

func custom(d apis.Describer) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return d.Describe(), true
}
