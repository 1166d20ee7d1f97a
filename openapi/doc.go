// Copyright 2026 The Typeful API Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package openapi renders API contracts into OpenAPI 3.0 documents.
//
// A Generator carries the document metadata and turns a contract into a
// Document, JSON bytes or YAML bytes:
//
//	gen := openapi.MustNew(
//	    openapi.WithTitle("Products API", "1.0.0"),
//	    openapi.WithServer("https://api.example.com", "Production"),
//	)
//	out, err := gen.GenerateJSON(apiContract, true)
//
// Rendering is deterministic: the same generator and contract always
// produce byte-identical output, in both pretty-printed (2-space indent)
// and minified form. Path order follows contract flatten order; tags and
// security schemes are de-duplicated.
package openapi
