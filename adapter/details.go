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

package adapter

import (
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"dirpx.dev/derrfmt/chain"
)

// Metadata keys of the ErrorInfo detail.
const (
	MetaFile     = "file"
	MetaFunction = "function"
	MetaLine     = "line"
	MetaTraceID  = "trace_id"
	MetaGroup    = "group"
)

// ErrorInfo describes err as a google.rpc.ErrorInfo: the reason is the
// error code, metadata carries the location, trace id and masked group.
// Empty values are left out of the metadata.
func ErrorInfo(err error, domain string) *errdetails.ErrorInfo {
	if err == nil {
		return nil
	}
	md := make(map[string]string, 5)
	put := func(k, v string) {
		if v != "" {
			md[k] = v
		}
	}
	if r, ok := Locate(err); ok {
		put(MetaFile, r.File)
		put(MetaFunction, r.Function)
		if r.Line > 0 {
			put(MetaLine, strconv.Itoa(r.Line))
		}
		put(MetaTraceID, r.TraceID.String())
	}
	put(MetaGroup, chain.Split(err).Group)

	return &errdetails.ErrorInfo{
		Reason:   CodeOf(err).String(),
		Domain:   domain,
		Metadata: md,
	}
}

// DebugInfo carries the full formatted chain of err in its detail and the
// construction site, as "function (file:line)", as its only stack entry.
func DebugInfo(err error) *errdetails.DebugInfo {
	if err == nil {
		return nil
	}
	d := &errdetails.DebugInfo{Detail: chain.Format(err)}
	if r, ok := Locate(err); ok && r.File != "" {
		d.StackEntries = []string{r.Function + " (" + r.Location() + ")"}
	}
	return d
}
