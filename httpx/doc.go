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

// Package httpx writes errors as HTTP responses.
//
// The body is a google.rpc.Status in its canonical JSON form:
//
//	{
//	  "code": 3,
//	  "message": "illegal_argument: bad id",
//	  "details": [
//	    {
//	      "@type": "type.googleapis.com/google.rpc.ErrorInfo",
//	      "reason": "illegal_argument",
//	      "domain": "orders.example.com",
//	      "metadata": {"file": "orders/handler.go", "line": "42", ...}
//	    }
//	  ]
//	}
//
// The HTTP status line comes from an apis.Mapper, and "code" carries the
// gRPC code resolved for the same error. With Writer.Debug set, a
// google.rpc.DebugInfo detail holds the full formatted chain.
package httpx
