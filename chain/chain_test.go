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

package chain

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/derrfmt/detail"
	"dirpx.dev/derrfmt/mask"
	"dirpx.dev/derrfmt/reflector"
)

// chained carries details and an optional cause.
type chained struct {
	cause error
	rec   detail.Record
}

func (e *chained) Error() string               { return "chained" }
func (e *chained) RootCause() error            { return e.cause }
func (e *chained) ErrorDetails() detail.Record { return e.rec }

// leaf carries details but no cause.
type leaf struct {
	msg string
	rec detail.Record
}

func (e *leaf) Error() string               { return e.msg }
func (e *leaf) ErrorDetails() detail.Record { return e.rec }

// text describes itself.
type text string

func (e text) Error() string    { return string(e) }
func (e text) Describe() string { return string(e) }

// selfDescribed describes itself through the formatter.
type selfDescribed struct{ chained }

func (e *selfDescribed) Describe() string { return Format(e) }

var (
	recA = detail.New("a", "f", 1)
	recB = detail.New("b", "g", 2)
)

const recAText = "Record file: a,function: f,line: 1,traceId: "

func TestFormat_NoRootCauseIsDetailsOnly(t *testing.T) {
	err := &chained{rec: recA}

	assert.Equal(t, recAText, Format(err))
}

func TestFormat_RootCauseWithoutDetails(t *testing.T) {
	err := &chained{cause: errors.New("boom"), rec: recA}

	want := "RootCause: errorString s: boom\n\nerrorString s: boom\nErrorDetails: " + recAText
	assert.Equal(t, want, Format(err))
}

func TestFormat_SuppressesEqualDetails(t *testing.T) {
	same := &chained{cause: &leaf{msg: "x", rec: recA}, rec: recA}
	other := &chained{cause: &leaf{msg: "x", rec: recB}, rec: recA}

	got := Format(same)
	assert.NotContains(t, got, DetailsHeader)
	assert.True(t, strings.HasSuffix(got, "\n"), "%q", got)

	got = Format(other)
	assert.Contains(t, got, DetailsHeader+recAText)
}

func TestFormat_SuppressionIsStructural(t *testing.T) {
	// two records built independently from the same values
	a := detail.New("x.go", "pkg.F", 7)
	b := detail.New("x.go", "pkg.F", 7)

	err := &chained{cause: &leaf{msg: "x", rec: b}, rec: a}
	assert.True(t, Split(err).Suppressed)

	err = &chained{cause: &leaf{msg: "x", rec: b.WithTraceID("trace-1")}, rec: a}
	assert.False(t, Split(err).Suppressed)
}

func TestFormat_EndToEnd(t *testing.T) {
	cause := fmt.Sprintf("123 bytes, MemLocation: 0x123456af, uuid: %s, date: %s",
		uuid.NewString(), time.Now().Format(time.RFC3339))
	err := &chained{cause: text(cause), rec: recA}

	got := Format(err)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, RootCauseHeader+"### bytes, MemLocation: 0x######, uuid: ########-####-####-####-############, date: ####-##-##T##:##:##+####", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, cause, lines[2])
	assert.True(t, strings.HasPrefix(lines[3], DetailsHeader))
	assert.Contains(t, lines[3], "file: a")
}

func TestFormat_Nil(t *testing.T) {
	assert.Equal(t, "<nil>", Format(nil))
	assert.Equal(t, "<nil>", (*Formatter)(nil).Format(nil))
}

func TestFormat_ErrorWithoutDetails(t *testing.T) {
	assert.Equal(t, "errorString s: x", Format(errors.New("x")))
}

func TestFormat_CauseDescribesItself(t *testing.T) {
	inner := &selfDescribed{chained{cause: text("inner cause"), rec: recB}}
	err := &chained{cause: inner, rec: recA}

	p := Split(err)

	require.True(t, p.HasRoot)
	assert.Equal(t, Format(inner), p.Root)
	assert.Contains(t, p.Root, "inner cause")
	assert.False(t, p.Suppressed)
}

func TestRootCause(t *testing.T) {
	l := &leaf{msg: "boom", rec: recA}

	assert.Same(t, l, RootCause(&chained{cause: l}))
	assert.Nil(t, RootCause(&chained{}))
	assert.Same(t, l, RootCause(fmt.Errorf("ctx: %w", l)))
	assert.Nil(t, RootCause(errors.Join(l, errors.New("other"))))
	assert.Nil(t, RootCause(errors.New("plain")))
	assert.Nil(t, RootCause(nil))
}

func TestFormat_UnwrapFallback(t *testing.T) {
	l := &leaf{msg: "boom", rec: recA}
	p := Split(fmt.Errorf("ctx: %w", l))

	require.True(t, p.HasRoot)
	assert.Equal(t, reflector.Describe(l), p.Root)
	assert.True(t, strings.HasPrefix(p.Details, "wrapError"), p.Details)
	assert.False(t, p.Suppressed)
}

func TestDetails(t *testing.T) {
	r, ok := Details(&leaf{rec: recB})
	assert.True(t, ok)
	assert.Equal(t, recB, r)

	// wrapped errors are not searched
	_, ok = Details(fmt.Errorf("w: %w", &leaf{rec: recB}))
	assert.False(t, ok)
}

func TestSplit_Group(t *testing.T) {
	id := uuid.NewString()

	p := Split(&chained{cause: text("id " + id), rec: recA})
	assert.Equal(t, "id "+mask.UUIDPlaceholder, p.Group)
	assert.Equal(t, "id "+id, p.Root)

	p = Split(&chained{rec: detail.New("a", "f", 1, detail.WithTraceID("trace-1234"))})
	assert.False(t, p.HasRoot)
	assert.Equal(t, p.Details, p.String())
	assert.Equal(t, mask.Mask(p.Details), p.Group)
}

func TestParts_StringMatchesFormat(t *testing.T) {
	errs := []error{
		nil,
		errors.New("x"),
		&chained{rec: recA},
		&chained{cause: text("c"), rec: recA},
		&chained{cause: &leaf{rec: recA}, rec: recA},
	}
	for _, err := range errs {
		assert.Equal(t, Format(err), Split(err).String())
	}
}

func TestNew_Options(t *testing.T) {
	id := uuid.NewString()
	err := &chained{cause: text(id), rec: recA}

	f := New(WithMasker(mask.New()))
	assert.True(t, strings.HasPrefix(f.Format(err), RootCauseHeader+id+"\n"))

	f = New(WithResolver(func(v any) string { return fmt.Sprintf("<%T>", v) }))
	assert.Equal(t, "RootCause: <chain.text>\n\n<chain.text>\nErrorDetails: <detail.Record>", f.Format(err))

	f = New(WithMasker(nil), WithResolver(nil), nil)
	assert.Equal(t, Format(err), f.Format(err))
	assert.Same(t, Default(), std)
}

func TestFormat_Concurrent(t *testing.T) {
	err := &chained{cause: text("0xdeadbeef 12 bytes"), rec: recA}
	want := Format(err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := Format(err); got != want {
					t.Errorf("Format() = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// Value receivers: reached through a nil pointer they panic.
type valueDetailed struct{ rec detail.Record }

func (e valueDetailed) Error() string               { return "value detailed" }
func (e valueDetailed) ErrorDetails() detail.Record { return e.rec }

type valueCaused struct{ cause error }

func (e valueCaused) Error() string    { return "value caused" }
func (e valueCaused) RootCause() error { return e.cause }

type valueWrapped struct{ cause error }

func (e valueWrapped) Error() string { return "value wrapped" }
func (e valueWrapped) Unwrap() error { return e.cause }

func TestFormat_NilPointerWithValueMethods(t *testing.T) {
	var detailed *valueDetailed
	var caused *valueCaused
	var wrapped *valueWrapped

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrorDetails", detailed, "valueDetailed"},
		{"RootCause", caused, "valueCaused"},
		{"Unwrap", wrapped, "valueWrapped"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() { _ = Format(tt.err) })
			assert.Equal(t, tt.want, Format(tt.err))
			assert.False(t, Split(tt.err).HasRoot)
		})
	}

	_, ok := Details(detailed)
	assert.False(t, ok)
	assert.Nil(t, RootCause(caused))
	assert.Nil(t, RootCause(wrapped))

	// The same types behave normally when not nil.
	l := &leaf{msg: "boom", rec: recB}
	r, ok := Details(valueDetailed{rec: recA})
	assert.True(t, ok)
	assert.Equal(t, recA, r)
	assert.Same(t, l, RootCause(valueCaused{cause: l}))
	assert.Same(t, l, RootCause(valueWrapped{cause: l}))
}
