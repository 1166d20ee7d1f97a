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

// Package stdhttp mounts a contract on a net/http ServeMux.
//
// Handlers are registered by the route's dotted qualified name and receive
// request data already validated against the contract's schemas:
//
//	h, err := stdhttp.NewHandler(apiContract, gen, stdhttp.Handlers{
//	    "v1.products.list": listProducts,
//	    "v1.products.get":  getProduct,
//	})
//
// A declared route with no matching handler is logged and skipped rather
// than failing construction. Validation failures are answered with a 422
// JSON body identifying the failing request part and fields. The rendered
// OpenAPI document is served at a configurable path (default "/api-doc"),
// with ETag-based caching, and optionally a Swagger UI page.
package stdhttp
