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

// Document is the root OpenAPI 3.0 document produced from a contract. It
// marshals to the JSON (and YAML) shape consumed by documentation tools and
// client generators.
type Document struct {
	// OpenAPI is always the literal "3.0.0".
	OpenAPI string `json:"openapi" yaml:"openapi"`

	// Info contains API metadata (title, version, description, ...).
	Info Info `json:"info" yaml:"info"`

	// Servers lists server URLs. Omitted entirely when empty; consumers
	// treat an absent key differently from an empty array.
	Servers []Server `json:"servers,omitempty" yaml:"servers,omitempty"`

	// Paths maps rendered paths to their operations, in flatten order.
	Paths *Paths `json:"paths" yaml:"paths"`

	// Components holds the security schemes actually referenced.
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`

	// Tags lists every tag used anywhere in the contract, sorted and
	// de-duplicated. Omitted when no tags exist.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	// Title is the API title (required).
	Title string `json:"title" yaml:"title"`

	// Version is the API version (required, e.g. "1.0.0").
	Version string `json:"version" yaml:"version"`

	// Description provides a detailed description of the API.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// TermsOfService is a URL for the Terms of Service.
	TermsOfService string `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`

	// Contact provides contact information for the API.
	Contact *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`

	// License provides license information for the API.
	License *License `json:"license,omitempty" yaml:"license,omitempty"`
}

// Contact information for the API.
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License information for the API.
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Server represents a server URL and optional description.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem holds the operations available on a single path, one per HTTP
// method.
type PathItem struct {
	Get    *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put    *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post   *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch  *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// Operation describes a single (path, method) pair.
type Operation struct {
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Deprecated  bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]*Response  `json:"responses" yaml:"responses"`
	Security    []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter describes a single path or query parameter.
type Parameter struct {
	Name        string        `json:"name" yaml:"name"`
	In          string        `json:"in" yaml:"in"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool          `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *SchemaObject `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody describes a JSON request body.
type RequestBody struct {
	Required bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Content  map[string]MediaType `json:"content" yaml:"content"`
}

// Response describes one response of an operation.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType binds a schema to a content type.
type MediaType struct {
	Schema *SchemaObject `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// SchemaObject is the rendered JSON Schema subset used in documents.
type SchemaObject struct {
	Type                 string                   `json:"type,omitempty" yaml:"type,omitempty"`
	Format               string                   `json:"format,omitempty" yaml:"format,omitempty"`
	Description          string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Properties           map[string]*SchemaObject `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string                 `json:"required,omitempty" yaml:"required,omitempty"`
	Items                *SchemaObject            `json:"items,omitempty" yaml:"items,omitempty"`
	Enum                 []string                 `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default              any                      `json:"default,omitempty" yaml:"default,omitempty"`
	Minimum              *float64                 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum              *float64                 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength            *int                     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength            *int                     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern              string                   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Nullable             bool                     `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	OneOf                []*SchemaObject          `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AdditionalProperties *SchemaObject            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

// Components holds reusable document components. Only security schemes are
// produced by this renderer.
type Components struct {
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
}

// SecurityScheme defines an authentication scheme.
type SecurityScheme struct {
	Type         string `json:"type" yaml:"type"`
	Scheme       string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	In           string `json:"in,omitempty" yaml:"in,omitempty"`
}

// SecurityRequirement names a required security scheme. The value lists
// required scopes and is always empty for the schemes produced here.
type SecurityRequirement map[string][]string

// Tag is a document-level tag entry.
type Tag struct {
	Name string `json:"name" yaml:"name"`
}
