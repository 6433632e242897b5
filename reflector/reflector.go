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

package reflector

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// UnknownLabel labels values that have no name of their own, such as
// slice elements.
const UnknownLabel = "unknown key"

// nilTypeName is rendered for a nil interface value.
const nilTypeName = "<nil>"

// Field is one rendered label/value pair.
type Field struct {
	Label string
	Value string
}

// String returns "label: value".
func (f Field) String() string {
	return f.Label + ": " + f.Value
}

// Generic is the reflective rendering of a value. It implements
// apis.Describer, so it can be passed anywhere a described value is
// expected.
type Generic struct {
	TypeName string
	Fields   []Field
}

// Describe joins the type name and fields: "TypeName a: 1,b: 2", or just
// "TypeName" when there are no fields.
func (g Generic) Describe() string {
	if len(g.Fields) == 0 {
		return g.TypeName
	}
	var b strings.Builder
	b.WriteString(g.TypeName)
	b.WriteByte(' ')
	for i, f := range g.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}
	return b.String()
}

// String is Describe.
func (g Generic) String() string { return g.Describe() }

// Describe is shorthand for Of(v).Describe().
func Describe(v any) string {
	return Of(v).Describe()
}

// Of introspects v. It never fails: values with no enumerable structure
// render as their type name alone.
func Of(v any) Generic {
	if v == nil {
		return Generic{TypeName: nilTypeName}
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Generic{TypeName: typeName(rv.Type().Elem())}
		}
		rv = rv.Elem()
	}

	g := Generic{TypeName: typeName(rv.Type())}
	switch rv.Kind() {
	case reflect.Struct:
		g.Fields = structFields(rv)
	case reflect.Slice, reflect.Array:
		g.Fields = elements(rv)
	case reflect.Map:
		g.Fields = entries(rv)
	}
	return g
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

func structFields(rv reflect.Value) []Field {
	t := rv.Type()
	out := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			continue
		}
		label, ok := labelOf(sf)
		if !ok {
			continue
		}
		out = append(out, Field{Label: label, Value: text(rv.Field(i))})
	}
	return out
}

// labelOf resolves the label of a struct field. Only the json name is
// used; options such as omitempty never hide a field.
func labelOf(sf reflect.StructField) (label string, ok bool) {
	label = sf.Name
	if sf.Name == "_" {
		label = UnknownLabel
	}
	if tag, found := sf.Tag.Lookup("json"); found {
		if tag == "-" {
			return "", false
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			label = name
		}
	}
	if tag, found := sf.Tag.Lookup("describe"); found {
		if tag == "-" {
			return "", false
		}
		if tag != "" {
			label = tag
		}
	}
	return label, true
}

func elements(rv reflect.Value) []Field {
	out := make([]Field, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, Field{Label: UnknownLabel, Value: text(rv.Index(i))})
	}
	return out
}

func entries(rv reflect.Value) []Field {
	out := make([]Field, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out = append(out, Field{Label: text(it.Key()), Value: text(it.Value())})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// text is the default %v rendering. Unexported values cannot be handed to
// fmt as interfaces, so their reflect.Value is printed instead; fmt then
// skips Stringer and error methods for them.
func text(v reflect.Value) string {
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return fmt.Sprint(v)
}
