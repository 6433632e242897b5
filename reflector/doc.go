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

// Package reflector renders arbitrary values as a flat, stable
// "TypeName label: value,label: value" string by enumerating their fields at
// runtime. It is the fallback used when a value does not implement
// apis.Describer.
//
// Label selection for struct fields, in order of precedence:
//
//	`describe:"label"`   explicit label
//	`json:"label,..."`   the JSON name
//	field name           otherwise
//
// A tag value of "-" on either key hides the field. Other json options are
// ignored, so zero values are rendered too. Embedded fields are not
// enumerated. Slice and
// array elements carry the UnknownLabel; map entries are labelled by their
// key and ordered by it.
package reflector
