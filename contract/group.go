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

package contract

// NamedRoute pairs a route with its local name inside a group.
type NamedRoute struct {
	Name  string
	Route Route
}

// NamedGroup pairs a child group with its local name.
type NamedGroup struct {
	Name  string
	Group *Group
}

// Group is an internal node of the contract tree: a named collection of
// routes and nested child groups, plus group-level documentation tags and
// middleware identifiers.
//
// Routes and children keep their insertion order; traversal emits routes
// before descending into children, and that ordering flows through to the
// generated document and to adapters registering real HTTP routes.
//
// Group is a construction-time builder: its methods mutate and return the
// receiver for chaining. Once a group is handed to a Contract it is read
// only by convention.
type Group struct {
	routes     []NamedRoute
	children   []NamedGroup
	tags       []string
	middleware []string
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Route adds a route under the given local name.
func (g *Group) Route(name string, r Route) *Group {
	g.routes = append(g.routes, NamedRoute{Name: name, Route: r})
	return g
}

// Child nests a group under the given local name. The name becomes a path
// segment for every route beneath it.
func (g *Group) Child(name string, child *Group) *Group {
	g.children = append(g.children, NamedGroup{Name: name, Group: child})
	return g
}

// Tags adds group-level documentation tags.
func (g *Group) Tags(tags ...string) *Group {
	g.tags = append(g.tags, tags...)
	return g
}

// Middleware adds middleware identifiers. They are opaque to the core and
// consumed only by adapters.
func (g *Group) Middleware(ids ...string) *Group {
	g.middleware = append(g.middleware, ids...)
	return g
}

// Routes returns the group's routes in insertion order.
func (g *Group) Routes() []NamedRoute {
	return append([]NamedRoute(nil), g.routes...)
}

// Children returns the nested groups in insertion order.
func (g *Group) Children() []NamedGroup {
	return append([]NamedGroup(nil), g.children...)
}

// GroupTags returns the group-level documentation tags.
func (g *Group) GroupTags() []string {
	return append([]string(nil), g.tags...)
}

// MiddlewareIDs returns the declared middleware identifiers.
func (g *Group) MiddlewareIDs() []string {
	return append([]string(nil), g.middleware...)
}

// VersionEntry binds a version label to its root group.
type VersionEntry struct {
	Label string
	Root  *Group
}

// Contract is the full versioned tree of route groups describing an API.
// Versions keep their declaration order. A contract is constructed once and
// never mutated afterwards; all derived views (flattening, documents) are
// pure functions over it.
type Contract struct {
	versions []VersionEntry
}

// New creates an empty contract.
func New() *Contract {
	return &Contract{}
}

// Version adds a version label (conventionally "v1", "v2", ...) with its
// root group. The root group contributes no path segment of its own.
func (c *Contract) Version(label string, root *Group) *Contract {
	c.versions = append(c.versions, VersionEntry{Label: label, Root: root})
	return c
}

// Versions returns the version entries in declaration order.
func (c *Contract) Versions() []VersionEntry {
	return append([]VersionEntry(nil), c.versions...)
}
