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

// Package contract defines the API contract model: immutable route
// definitions organized into a versioned tree of route groups, plus the
// traversal that flattens the tree into fully qualified routes.
//
// A contract is declared once and read many times. Route definitions are
// immutable values; every With* method returns a new Route, so builder
// chains can branch freely:
//
//	base := contract.GET("/:id", product).WithParams(idParams)
//	admin := base.WithTags("admin")
//	public := base.WithTags("public") // admin is unaffected
//
// Groups and versions preserve declaration order, and Flatten emits a
// group's routes before its children. That order is observable: it drives
// document path order and adapter registration order.
//
// Route and Group are distinct types, so a tree node is always exactly one
// of the two; the ambiguous dual-shaped node cannot be expressed.
package contract
