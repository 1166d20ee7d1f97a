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

import (
	"sort"
	"strings"
)

// FlatRoute is one fully qualified endpoint produced by Flatten.
type FlatRoute struct {
	// Version is the contract version label the route belongs to.
	Version string

	// Group lists the ancestor group names from the version root down,
	// excluding the version itself.
	Group []string

	// Name is the route's local name inside its group.
	Name string

	// Route is the route definition.
	Route Route

	// FullPath is the normalized absolute path: base path, version, group
	// segments and the route's own path joined, double slashes collapsed,
	// no trailing slash except for "/" itself.
	FullPath string

	// Middleware lists the middleware identifiers declared on the route's
	// ancestor groups, outermost first. The identifiers are opaque here;
	// adapters resolve them.
	Middleware []string
}

// QualifiedName returns the dotted identifier of the route
// (e.g. "v1.products.list"), used by adapters to look up handlers and to
// report missing ones.
func (fr FlatRoute) QualifiedName() string {
	parts := make([]string, 0, len(fr.Group)+2)
	parts = append(parts, fr.Version)
	parts = append(parts, fr.Group...)
	parts = append(parts, fr.Name)
	return strings.Join(parts, ".")
}

// Flatten walks the contract depth-first and returns every route with its
// fully qualified path.
//
// Versions are visited in declaration order. Within a group, routes are
// emitted before children, both in declaration order. The resulting order
// determines document path order and adapter registration order, so it is
// part of the function's contract.
//
// basePath, when non-empty, is prepended to every produced path. An empty
// or nil contract flattens to an empty slice.
func Flatten(c *Contract, basePath string) []FlatRoute {
	entries := []FlatRoute{}
	if c == nil {
		return entries
	}
	for _, v := range c.versions {
		if v.Root == nil {
			continue
		}
		flattenGroup(v.Root, v.Label, basePath, nil, nil, &entries)
	}
	return entries
}

func flattenGroup(g *Group, version, basePath string, groupPath, middleware []string, out *[]FlatRoute) {
	if len(g.middleware) > 0 {
		middleware = append(append([]string(nil), middleware...), g.middleware...)
	}
	for _, nr := range g.routes {
		segments := make([]string, 0, len(groupPath)+3)
		segments = append(segments, basePath, version)
		segments = append(segments, groupPath...)
		segments = append(segments, nr.Route.path)

		*out = append(*out, FlatRoute{
			Version:    version,
			Group:      append([]string(nil), groupPath...),
			Name:       nr.Name,
			Route:      nr.Route,
			FullPath:   joinPath(segments...),
			Middleware: middleware,
		})
	}
	for _, nc := range g.children {
		if nc.Group == nil {
			continue
		}
		childPath := append(append([]string(nil), groupPath...), nc.Name)
		flattenGroup(nc.Group, version, basePath, childPath, middleware, out)
	}
}

// joinPath joins path segments with single slashes. Empty segments vanish,
// runs of slashes collapse, and the result never ends in a trailing slash
// unless it is exactly "/".
func joinPath(segments ...string) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		sb.WriteByte('/')
		sb.WriteString(seg)
	}

	joined := sb.String()
	if joined == "" {
		return "/"
	}

	var out strings.Builder
	out.Grow(len(joined))
	prevSlash := false
	for i := 0; i < len(joined); i++ {
		ch := joined[i]
		if ch == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		out.WriteByte(ch)
	}

	p := out.String()
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}

// ExtractTags collects every group-level and route-level tag across the
// contract. The result is de-duplicated and lexicographically sorted so
// generated documents are diff-stable regardless of declaration order.
func ExtractTags(c *Contract) []string {
	seen := map[string]struct{}{}
	if c != nil {
		for _, v := range c.versions {
			if v.Root != nil {
				collectTags(v.Root, seen)
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func collectTags(g *Group, seen map[string]struct{}) {
	for _, t := range g.tags {
		seen[t] = struct{}{}
	}
	for _, nr := range g.routes {
		for _, t := range nr.Route.tags {
			seen[t] = struct{}{}
		}
	}
	for _, nc := range g.children {
		if nc.Group != nil {
			collectTags(nc.Group, seen)
		}
	}
}
