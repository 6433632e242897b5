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
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/derrfmt/reflector"
)

type customDescribed struct {
	Reason int
}

func (c customDescribed) Describe() string {
	return "Custom description with reason: 123"
}

type plain struct {
	Reason int
}

// parent declares no description of its own.
type parent struct {
	Reason int
}

type child struct {
	parent
	Extra string
}

// described gains Describe through embedding.
type described struct {
	customDescribed
	Extra string
}

type empty struct{}

type emptyDescription struct{}

func (emptyDescription) Describe() string { return "" }

func TestValue_PrefersCustomDescription(t *testing.T) {
	v := customDescribed{Reason: 123}

	got := Value(v)

	assert.Equal(t, "Custom description with reason: 123", got)
	assert.NotEqual(t, reflector.Describe(v), got)
	assert.Equal(t, got, Value(&v))
}

func TestValue_FallsBackToReflection(t *testing.T) {
	assert.Equal(t, "plain Reason: 123", Value(plain{Reason: 123}))
	assert.Equal(t, "<nil>", Value(nil))
	assert.Equal(t, "int", Value(7))
}

func TestValue_SubtypeUsesItsOwnName(t *testing.T) {
	got := Value(child{parent: parent{Reason: 123}, Extra: "x"})

	assert.Equal(t, "child Extra: x", got)
	assert.NotContains(t, got, "parent")
}

func TestValue_EmbeddedDescribeIsPromoted(t *testing.T) {
	got := Value(described{Extra: "x"})
	assert.Equal(t, "Custom description with reason: 123", got)
}

func TestValue_GenericIsReDescribable(t *testing.T) {
	g := reflector.Of(plain{Reason: 1})

	assert.True(t, Is(g))
	assert.Equal(t, "plain Reason: 1", Value(g))
	assert.Equal(t, Value(plain{Reason: 1}), Value(g))
}

func TestValue_PanickingDescribeDegrades(t *testing.T) {
	var p *customDescribed

	assert.NotPanics(t, func() { _ = Value(p) })
	assert.Equal(t, "customDescribed", Value(p))
}

func TestOptional(t *testing.T) {
	s, ok := Optional(empty{})
	assert.True(t, ok)
	assert.Equal(t, "empty", s)

	s, ok = Optional(emptyDescription{})
	assert.False(t, ok)
	assert.Empty(t, s)
}

func TestIs(t *testing.T) {
	assert.True(t, Is(customDescribed{}))
	assert.True(t, Is(&customDescribed{}))
	assert.False(t, Is(plain{}))
	assert.False(t, Is(nil))
}
