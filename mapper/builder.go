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

package mapper

import (
	"fmt"

	"google.golang.org/grpc/codes"

	"dirpx.dev/derrfmt/code"
)

// table is one resolution tier. Its HTTP and gRPC halves are independent
// so an option can move one transport and leave the other alone.
type table struct {
	http map[code.Code]int
	grpc map[code.Code]codes.Code
}

func newTable(size int) table {
	return table{
		http: make(map[code.Code]int, size),
		grpc: make(map[code.Code]codes.Code, size),
	}
}

// clone returns a copy that shares nothing with t. Empty halves become
// nil maps, which read the same.
func (t table) clone() table {
	var c table
	if len(t.http) > 0 {
		c.http = make(map[code.Code]int, len(t.http))
		for k, v := range t.http {
			c.http[k] = v
		}
	}
	if len(t.grpc) > 0 {
		c.grpc = make(map[code.Code]codes.Code, len(t.grpc))
		for k, v := range t.grpc {
			c.grpc[k] = v
		}
	}
	return c
}

// validate checks every key of t and every HTTP status.
func (t table) validate() error {
	for c, v := range t.http {
		if err := code.Validate(c); err != nil {
			return fmt.Errorf("mapper: code %q: %w", c, err)
		}
		if !validHTTP(v) {
			return fmt.Errorf("mapper: invalid HTTP status %d for code %q", v, c)
		}
	}
	for c := range t.grpc {
		if err := code.Validate(c); err != nil {
			return fmt.Errorf("mapper: code %q: %w", c, err)
		}
	}
	return nil
}

// builder collects options before New freezes them.
type builder struct {
	defaults  table
	overrides table

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder seeds a builder with the library defaults.
func newBuilder() *builder {
	b := &builder{
		defaults:     newTable(len(defaults)),
		overrides:    newTable(0),
		fallbackHTTP: fallback.HTTP,
		fallbackGRPC: fallback.GRPC,
	}
	for c, st := range defaults {
		b.defaults.http[c] = st.HTTP
		b.defaults.grpc[c] = st.GRPC
	}
	return b
}
