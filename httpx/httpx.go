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

package httpx

import (
	"net/http"

	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/derrfmt/adapter"
	"dirpx.dev/derrfmt/apis"
)

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	// Mapper resolves statuses; nil means mapper.Default.
	Mapper apis.Mapper

	// Domain is reported as ErrorInfo.domain, e.g. "orders.example.com".
	Domain string

	// Debug adds a DebugInfo detail with the full formatted chain. Keep it
	// off for untrusted clients.
	Debug bool
}

// Write serializes err as a google.rpc.Status JSON document and writes it
// to the response writer. The HTTP status is resolved via the Mapper; the
// body's "code" is the matching gRPC code.
//
// A nil error writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	st := adapter.Resolve(w.Mapper, err)
	body := w.status(err, st)

	// IMPORTANT: protobuf JSON through protojson must be used so that the
	// Any details are rendered with their "@type" and json_name fields.
	b, merr := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	if merr != nil {
		http.Error(rw, http.StatusText(st.HTTP), st.HTTP)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

// Status returns the google.rpc.Status Write would send for err, or nil
// for a nil error.
func (w Writer) Status(err error) *spb.Status {
	if err == nil {
		return nil
	}
	return w.status(err, adapter.Resolve(w.Mapper, err))
}

func (w Writer) status(err error, st apis.Status) *spb.Status {
	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: err.Error(),
	}
	details := []proto.Message{adapter.ErrorInfo(err, w.Domain)}
	if w.Debug {
		details = append(details, adapter.DebugInfo(err))
	}
	for _, d := range details {
		if a, aerr := anypb.New(d); aerr == nil {
			body.Details = append(body.Details, a)
		}
	}
	return body
}

// Handler adapts a handler returning an error: a non-nil error is written
// with w. The wrapped handler must not have written a response yet when it
// fails.
func (w Writer) Handler(h func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}
