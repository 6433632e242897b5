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
	"net/http"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/derrfmt/apis"
	"dirpx.dev/derrfmt/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	tests := []struct {
		c        code.Code
		wantHTTP int
		wantGRPC codes.Code
	}{
		{code.IllegalArgument, 400, codes.InvalidArgument},
		{code.InvalidURL, 400, codes.InvalidArgument},
		{code.IllegalState, 409, codes.FailedPrecondition},
		{code.Runtime, 500, codes.Internal},
		{code.Internal, 500, codes.Internal},
		{code.Dependency, 502, codes.Unavailable},
		{code.StatusCode, 502, codes.Unknown},
	}
	for _, tt := range tests {
		st := m.Status(tt.c)
		if st.HTTP != tt.wantHTTP || st.GRPC != tt.wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				tt.c, st.HTTP, st.GRPC, tt.wantHTTP, tt.wantGRPC)
		}
	}
}

func TestDefaults_CoverKnownCodes(t *testing.T) {
	for _, c := range code.Known() {
		st, ok := defaults[c]
		if !ok {
			t.Fatalf("no default for %q", c)
		}
		if !validHTTP(st.HTTP) {
			t.Fatalf("%q: invalid HTTP default %d", c, st.HTTP)
		}
	}
}

func TestPriority_OverrideOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.Dependency, 503),  // default
		WithHTTPOverride(code.Dependency, 504), // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Dependency); got != 504 {
		t.Fatalf("override must win; got %d, want 504", got)
	}
}

func TestPriority_OverrideOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(code.Dependency, int(codes.Unavailable)),
		WithGRPCOverride(code.Dependency, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(code.Dependency); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}
}

func TestUnknownCode_UsesFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Code("not_registered"))
	if st.HTTP != http.StatusInternalServerError || st.GRPC != codes.Internal {
		t.Fatalf("fallback = %+v", st)
	}

	m2, err := New(WithFallback(http.StatusServiceUnavailable, int(codes.Unavailable)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st = m2.Status(code.Empty)
	if st.HTTP != 503 || st.GRPC != codes.Unavailable {
		t.Fatalf("configured fallback = %+v", st)
	}
}

func TestNew_CustomCode(t *testing.T) {
	teapot := code.MustParse("teapot")
	m, err := New(WithHTTPDefault(teapot, http.StatusTeapot))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(teapot); got != http.StatusTeapot {
		t.Fatalf("got %d", got)
	}
	if got := m.GRPCStatus(teapot); got != codes.Internal {
		t.Fatalf("gRPC must fall back; got %v", got)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := map[string][]Option{
		"bad code":         {WithHTTPOverride(code.Code("Bad Code"), 400)},
		"bad grpc code":    {WithGRPCDefault(code.Code("x"), int(codes.Internal))},
		"status too low":   {WithHTTPDefault(code.Runtime, 42)},
		"status too high":  {WithHTTPOverride(code.Runtime, 600)},
		"fallback invalid": {WithFallback(0, int(codes.Internal))},
	}
	for name, opts := range tests {
		if _, err := New(opts...); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestGRPC_OutOfRangeIsUnknown(t *testing.T) {
	m, err := New(WithGRPCOverride(code.Runtime, 99))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(code.Runtime); got != codes.Unknown {
		t.Fatalf("got %v, want Unknown", got)
	}
}

func TestNew_DoesNotShareDefaults(t *testing.T) {
	m1 := MustNew(WithHTTPDefault(code.Runtime, 503))
	m2 := MustNew()
	if m1.HTTPStatus(code.Runtime) != 503 || m2.HTTPStatus(code.Runtime) != 500 {
		t.Fatal("mappers share state")
	}
	if defaults[code.Runtime].HTTP != 500 {
		t.Fatal("library defaults mutated")
	}
	if Default().HTTPStatus(code.Runtime) != 500 {
		t.Fatal("Default() must use library defaults")
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	_ = MustNew(WithHTTPDefault(code.Runtime, 1))
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(
		WithHTTPOverride(code.Dependency, 503),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(code.Dependency)
	for _, want := range []string{
		`code="dependency"`,
		`http: source=override -> 503`,
		`grpc: source=default -> UNAVAILABLE(14)`,
	} {
		if !strings.Contains(exp, want) {
			t.Fatalf("Explain must include %q:\n%s", want, exp)
		}
	}
	if strings.Count(exp, "\n") != 2 {
		t.Fatalf("Explain must have three lines:\n%s", exp)
	}

	if exp := m.Explain(code.Code("nope")); !strings.Contains(exp, "source=fallback") {
		t.Fatalf("Explain must report fallback:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPOverride(code.IllegalState, 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(code.IllegalState)
				_ = m.Status(code.Dependency)
				_ = m.Explain(code.Runtime)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(t *testing.B) {
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.IllegalArgument)
	}
}

func BenchmarkMapperStatus_Override(t *testing.B) {
	m, _ := New(
		WithHTTPOverride(code.Dependency, 503),
		WithGRPCOverride(code.Dependency, int(codes.Aborted)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.Dependency)
	}
}

func BenchmarkMapperStatus_Fallback(t *testing.B) {
	m, _ := New()
	c := code.Code("unmapped")
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(c)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
