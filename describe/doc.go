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

// Package describe resolves the textual description of any value.
//
// A value implementing apis.Describer is described by its own Describe
// method, verbatim. Every other value falls back to the generic rendering
// of package reflector. Resolution is a plain interface assertion, so new
// types opt in by implementing Describe without any registration.
package describe
