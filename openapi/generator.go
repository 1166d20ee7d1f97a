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

package openapi

import "errors"

var (
	// ErrTitleRequired indicates the API title was not set.
	ErrTitleRequired = errors.New("openapi: info title is required")

	// ErrVersionRequired indicates the API version was not set.
	ErrVersionRequired = errors.New("openapi: info version is required")
)

// Generator renders contracts into OpenAPI documents. It holds the document
// metadata (info, servers) and an optional base path prepended to every
// route.
//
// A Generator is immutable after New and safe for concurrent use; rendering
// is a pure function of the generator and the contract.
type Generator struct {
	info     Info
	servers  []Server
	basePath string
}

// Option configures a Generator using the functional options pattern.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*Generator)

// New creates a Generator with the given options. Title and version are
// required.
//
// Example:
//
//	gen, err := openapi.New(
//	    openapi.WithTitle("Products API", "1.0.0"),
//	    openapi.WithDescription("Catalog and ordering"),
//	    openapi.WithServer("https://api.example.com", "Production"),
//	)
func New(opts ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}

	if g.info.Title == "" {
		return nil, ErrTitleRequired
	}
	if g.info.Version == "" {
		return nil, ErrVersionRequired
	}
	return g, nil
}

// MustNew creates a Generator and panics if the configuration is invalid.
// Intended for package initialization, where configuration errors should
// fail immediately.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// WithTitle sets the required API title and version.
func WithTitle(title, version string) Option {
	return func(g *Generator) {
		g.info.Title = title
		g.info.Version = version
	}
}

// WithDescription sets the API description.
func WithDescription(text string) Option {
	return func(g *Generator) {
		g.info.Description = text
	}
}

// WithTermsOfService sets the terms-of-service URL.
func WithTermsOfService(url string) Option {
	return func(g *Generator) {
		g.info.TermsOfService = url
	}
}

// WithContact sets the API contact information.
func WithContact(name, url, email string) Option {
	return func(g *Generator) {
		g.info.Contact = &Contact{Name: name, URL: url, Email: email}
	}
}

// WithLicense sets the API license.
func WithLicense(name, url string) Option {
	return func(g *Generator) {
		g.info.License = &License{Name: name, URL: url}
	}
}

// WithServer adds a server entry. When no server is added the document
// omits the servers key entirely.
func WithServer(url, description string) Option {
	return func(g *Generator) {
		g.servers = append(g.servers, Server{URL: url, Description: description})
	}
}

// WithBasePath prepends a path prefix to every route in the document.
func WithBasePath(prefix string) Option {
	return func(g *Generator) {
		g.basePath = prefix
	}
}

// Info returns the configured document metadata.
func (g *Generator) Info() Info { return g.info }

// BasePath returns the configured path prefix, empty if none.
func (g *Generator) BasePath() string { return g.basePath }
