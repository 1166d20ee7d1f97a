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

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dobosmarton/typeful-api/contract"
	"github.com/dobosmarton/typeful-api/schema"
)

const jsonContentType = "application/json"

// pathParamPattern matches ":name" path template segments.
var pathParamPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// securitySchemeNames maps contract auth tags to document scheme names.
var securitySchemeNames = map[contract.Auth]string{
	contract.AuthBearer: "Bearer",
	contract.AuthAPIKey: "ApiKey",
	contract.AuthBasic:  "Basic",
}

// canonicalSecuritySchemes holds the single definition emitted per scheme
// name, regardless of how many routes reference it.
var canonicalSecuritySchemes = map[string]SecurityScheme{
	"Bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	"ApiKey": {Type: "apiKey", Name: "X-API-Key", In: "header"},
	"Basic":  {Type: "http", Scheme: "basic"},
}

// Generate renders the contract into a complete OpenAPI 3.0 document.
//
// The result is a pure function of the generator configuration and the
// contract; calling it twice yields equal documents.
func (g *Generator) Generate(c *contract.Contract) *Document {
	doc := &Document{
		OpenAPI: "3.0.0",
		Info:    g.info,
		Servers: append([]Server(nil), g.servers...),
		Paths:   NewPaths(),
	}

	used := map[string]*SecurityScheme{}
	for _, fr := range contract.Flatten(c, g.basePath) {
		item := doc.Paths.Item(rewritePathParams(fr.FullPath))
		setOperation(item, fr.Route.Method(), g.operation(fr, used))
	}

	if len(used) > 0 {
		doc.Components = &Components{SecuritySchemes: used}
	}
	for _, t := range contract.ExtractTags(c) {
		doc.Tags = append(doc.Tags, Tag{Name: t})
	}
	return doc
}

// GenerateJSON renders the contract and serializes it to JSON. With pretty
// set, output is 2-space indented; otherwise minified. Both forms are
// byte-stable across calls so generated specs can be diffed.
func (g *Generator) GenerateJSON(c *contract.Contract, pretty bool) ([]byte, error) {
	doc := g.Generate(c)
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// GenerateYAML renders the contract and serializes it to YAML.
func (g *Generator) GenerateYAML(c *contract.Contract) ([]byte, error) {
	return yaml.Marshal(g.Generate(c))
}

// ETag returns a strong ETag for serialized document bytes, for HTTP
// caching of served specs.
func ETag(doc []byte) string {
	return fmt.Sprintf(`"%x"`, sha256.Sum256(doc))
}

// rewritePathParams converts ":name" template segments to the "{name}"
// form OpenAPI uses.
func rewritePathParams(path string) string {
	return pathParamPattern.ReplaceAllString(path, "{$1}")
}

// operation builds the Operation for one flattened route, recording any
// referenced security scheme in used.
func (g *Generator) operation(fr contract.FlatRoute, used map[string]*SecurityScheme) *Operation {
	r := fr.Route

	op := &Operation{
		Summary:     r.Summary(),
		Description: r.Description(),
		Deprecated:  r.Deprecated(),
		OperationID: operationID(fr),
		Responses:   map[string]*Response{},
	}

	// Explicit route tags win; otherwise the first group segment alone
	// becomes the tag. This deliberately ignores deeper group nesting.
	if tags := r.Tags(); len(tags) > 0 {
		op.Tags = tags
	} else if len(fr.Group) > 0 {
		op.Tags = []string{fr.Group[0]}
	}

	if params := r.Params(); params != nil {
		op.Parameters = append(op.Parameters, parameters(params, "path")...)
	}
	if query := r.Query(); query != nil {
		op.Parameters = append(op.Parameters, parameters(query, "query")...)
	}

	// GET and DELETE never carry a request body, even when one was
	// mistakenly declared.
	if body := r.Body(); body != nil && methodHasBody(r.Method()) {
		op.RequestBody = &RequestBody{
			Required: true,
			Content:  jsonContent(body),
		}
	}

	for _, sr := range r.Responses() {
		desc := sr.Description
		if desc == "" {
			desc = "Response " + strconv.Itoa(sr.Code)
		}
		op.Responses[strconv.Itoa(sr.Code)] = &Response{
			Description: desc,
			Content:     jsonContent(sr.Schema),
		}
	}
	op.Responses["200"] = &Response{
		Description: "Successful response",
		Content:     jsonContent(r.Response()),
	}

	if name, ok := securitySchemeNames[r.Auth()]; ok {
		scheme := canonicalSecuritySchemes[name]
		used[name] = &scheme
		op.Security = []SecurityRequirement{{name: []string{}}}
	}

	return op
}

// operationID returns the route's explicit operation id or synthesizes
// "{version}_{group joined by _}_{name}". A route at the version root keeps
// the resulting double underscore (e.g. "v1__health"); the format is part
// of the id stability contract.
func operationID(fr contract.FlatRoute) string {
	if id := fr.Route.OperationID(); id != "" {
		return id
	}
	return fr.Version + "_" + strings.Join(fr.Group, "_") + "_" + fr.Name
}

// parameters derives one Parameter per top-level field of the schema.
// Path parameters are always required; query parameters follow the
// schema's own required set.
func parameters(s *schema.Schema, in string) []Parameter {
	d := s.Introspect()
	var out []Parameter
	for _, name := range d.PropertyNames() {
		out = append(out, Parameter{
			Name:        name,
			In:          in,
			Required:    in == "path" || d.IsRequired(name),
			Description: d.Properties[name].Description,
			Schema:      schemaObject(d.Properties[name]),
		})
	}
	return out
}

func methodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func jsonContent(s *schema.Schema) map[string]MediaType {
	return map[string]MediaType{
		jsonContentType: {Schema: schemaObject(s.Introspect())},
	}
}

// schemaObject converts a structural description into the rendered schema
// form, recursively.
func schemaObject(d *schema.Descriptor) *SchemaObject {
	if d == nil {
		return nil
	}

	out := &SchemaObject{
		Type:        d.Type,
		Format:      d.Format,
		Description: d.Description,
		Required:    append([]string(nil), d.Required...),
		Enum:        append([]string(nil), d.Enum...),
		Default:     d.Default,
		Minimum:     d.Minimum,
		Maximum:     d.Maximum,
		MinLength:   d.MinLength,
		MaxLength:   d.MaxLength,
		Pattern:     d.Pattern,
		Nullable:    d.Nullable,
	}
	if d.Items != nil {
		out.Items = schemaObject(d.Items)
	}
	if len(d.Properties) > 0 {
		out.Properties = make(map[string]*SchemaObject, len(d.Properties))
		for name, prop := range d.Properties {
			out.Properties[name] = schemaObject(prop)
		}
	}
	if d.AdditionalProperties != nil {
		out.AdditionalProperties = schemaObject(d.AdditionalProperties)
	}
	for _, alt := range d.OneOf {
		out.OneOf = append(out.OneOf, schemaObject(alt))
	}
	return out
}

func setOperation(item *PathItem, method string, op *Operation) {
	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPost:
		item.Post = op
	case http.MethodDelete:
		item.Delete = op
	case http.MethodPatch:
		item.Patch = op
	}
}
