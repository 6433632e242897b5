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

package slogx

import (
	"context"
	"log/slog"

	"dirpx.dev/derrfmt/adapter"
)

// Attribute keys of the rendered group.
const (
	KeyMessage  = "message"
	KeyCode     = "code"
	KeyGroup    = "group"
	KeyDetails  = "details"
	KeyLocation = "location"
	KeyTraceID  = "trace_id"
)

// DefaultKey is the conventional attribute key for errors.
const DefaultKey = "error"

// Value renders err as a group value. A nil error renders as "<nil>".
func Value(err error) slog.Value {
	if err == nil {
		return slog.StringValue("<nil>")
	}
	v := adapter.ToView(err)
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.String(KeyMessage, v.Message),
		slog.String(KeyCode, v.Code),
		slog.String(KeyGroup, v.Group),
		slog.String(KeyDetails, v.Description),
	)
	if v.Location != "" {
		attrs = append(attrs, slog.String(KeyLocation, v.Location))
	}
	if v.TraceID != "" {
		attrs = append(attrs, slog.String(KeyTraceID, v.TraceID))
	}
	return slog.GroupValue(attrs...)
}

// Attr returns key set to the group rendering of err.
func Attr(key string, err error) slog.Attr {
	return slog.Attr{Key: key, Value: Value(err)}
}

// Err is Attr with DefaultKey.
func Err(err error) slog.Attr {
	return Attr(DefaultKey, err)
}

type valuer struct{ err error }

func (v valuer) LogValue() slog.Value { return Value(v.err) }

// Valuer defers the rendering of err until a handler resolves it, which
// skips the work for disabled levels.
func Valuer(err error) slog.LogValuer {
	return valuer{err: err}
}

// Handler is a slog.Handler that rewrites error-valued attributes into
// their group rendering before delegating to the inner handler.
type Handler struct {
	inner slog.Handler
}

// NewHandler wraps inner.
func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

// Enabled delegates to the inner handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and delegates to the inner
// handler.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface contract
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(rewrite(a))
		return true
	})
	return h.inner.Handle(ctx, out)
}

// WithAttrs returns a new handler with the given attributes, rewritten,
// added to the inner handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rw := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rw[i] = rewrite(a)
	}
	return &Handler{inner: h.inner.WithAttrs(rw)}
}

// WithGroup returns a new handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}

// Unwrap returns the inner handler.
func (h *Handler) Unwrap() slog.Handler {
	return h.inner
}

var _ slog.Handler = (*Handler)(nil)

func rewrite(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return Attr(a.Key, err)
		}
	case slog.KindGroup:
		group := a.Value.Group()
		rw := make([]slog.Attr, len(group))
		for i, g := range group {
			rw[i] = rewrite(g)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rw...)}
	}
	return a
}
