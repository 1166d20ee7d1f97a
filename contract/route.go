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
	"net/http"

	"github.com/dobosmarton/typeful-api/schema"
)

// Auth is a declarative authentication requirement tag. It carries no
// enforcement; adapters decide what to do with it.
type Auth string

const (
	// AuthBearer declares HTTP bearer-token authentication.
	AuthBearer Auth = "bearer"
	// AuthAPIKey declares header API-key authentication.
	AuthAPIKey Auth = "apiKey"
	// AuthBasic declares HTTP basic authentication.
	AuthBasic Auth = "basic"
	// AuthNone declares an unauthenticated route. It is the zero value.
	AuthNone Auth = ""
)

// StatusResponse is an additional documented response for one status code.
type StatusResponse struct {
	// Code is the HTTP status code.
	Code int

	// Schema describes the response payload.
	Schema *schema.Schema

	// Description is the documented response description. When empty the
	// renderer synthesizes "Response {code}".
	Description string
}

// Route describes one endpoint: method, path template, request and response
// shapes, and documentation metadata.
//
// Route is an immutable value. Every With* method returns a new Route with
// its own backing storage, so a partially configured route can be branched
// into several endpoints without the branches bleeding into each other.
// This is the central invariant of the contract model.
type Route struct {
	method      string
	path        string
	body        *schema.Schema
	query       *schema.Schema
	params      *schema.Schema
	response    *schema.Schema
	responses   []StatusResponse
	auth        Auth
	summary     string
	description string
	tags        []string
	deprecated  bool
	operationID string
}

func newRoute(method, path string, response *schema.Schema) Route {
	return Route{method: method, path: path, response: response}
}

// GET declares a GET route with the given path template and success
// response schema.
func GET(path string, response *schema.Schema) Route {
	return newRoute(http.MethodGet, path, response)
}

// POST declares a POST route.
func POST(path string, response *schema.Schema) Route {
	return newRoute(http.MethodPost, path, response)
}

// PUT declares a PUT route.
func PUT(path string, response *schema.Schema) Route {
	return newRoute(http.MethodPut, path, response)
}

// PATCH declares a PATCH route.
func PATCH(path string, response *schema.Schema) Route {
	return newRoute(http.MethodPatch, path, response)
}

// DELETE declares a DELETE route.
func DELETE(path string, response *schema.Schema) Route {
	return newRoute(http.MethodDelete, path, response)
}

// clone copies r with fresh backing storage for its slices.
func (r Route) clone() Route {
	c := r
	c.tags = append([]string(nil), r.tags...)
	c.responses = append([]StatusResponse(nil), r.responses...)
	return c
}

// WithBody returns a copy of r with a request payload schema. Only
// meaningful for POST, PUT and PATCH; the renderer ignores bodies on other
// methods.
func (r Route) WithBody(s *schema.Schema) Route {
	c := r.clone()
	c.body = s
	return c
}

// WithQuery returns a copy of r with a query-string schema.
func (r Route) WithQuery(s *schema.Schema) Route {
	c := r.clone()
	c.query = s
	return c
}

// WithParams returns a copy of r with a path-parameter schema.
func (r Route) WithParams(s *schema.Schema) Route {
	c := r.clone()
	c.params = s
	return c
}

// WithAuth returns a copy of r declaring an authentication requirement.
func (r Route) WithAuth(a Auth) Route {
	c := r.clone()
	c.auth = a
	return c
}

// WithSummary returns a copy of r with a one-line summary.
func (r Route) WithSummary(text string) Route {
	c := r.clone()
	c.summary = text
	return c
}

// WithDescription returns a copy of r with a detailed description.
func (r Route) WithDescription(text string) Route {
	c := r.clone()
	c.description = text
	return c
}

// WithTags returns a copy of r with the given tags appended.
func (r Route) WithTags(tags ...string) Route {
	c := r.clone()
	c.tags = append(c.tags, tags...)
	return c
}

// WithDeprecated returns a copy of r marked deprecated.
func (r Route) WithDeprecated() Route {
	c := r.clone()
	c.deprecated = true
	return c
}

// WithOperationID returns a copy of r with an explicit operation id,
// overriding the synthesized one.
func (r Route) WithOperationID(id string) Route {
	c := r.clone()
	c.operationID = id
	return c
}

// WithResponse returns a copy of r documenting an additional response for
// the given status code. The rendered description is "Response {code}".
func (r Route) WithResponse(code int, s *schema.Schema) Route {
	c := r.clone()
	c.responses = append(c.responses, StatusResponse{Code: code, Schema: s})
	return c
}

// WithErrorResponse returns a copy of r documenting an error response whose
// description is the canonical HTTP status phrase (e.g. 404 "Not Found").
func (r Route) WithErrorResponse(code int, s *schema.Schema) Route {
	c := r.clone()
	c.responses = append(c.responses, StatusResponse{
		Code:        code,
		Schema:      s,
		Description: http.StatusText(code),
	})
	return c
}

// Method returns the HTTP method.
func (r Route) Method() string { return r.method }

// Path returns the path template as declared.
func (r Route) Path() string { return r.path }

// Body returns the request payload schema, or nil.
func (r Route) Body() *schema.Schema { return r.body }

// Query returns the query-string schema, or nil.
func (r Route) Query() *schema.Schema { return r.query }

// Params returns the path-parameter schema, or nil.
func (r Route) Params() *schema.Schema { return r.params }

// Response returns the success response schema.
func (r Route) Response() *schema.Schema { return r.response }

// Responses returns the additional per-status responses in declaration
// order. The returned slice is a copy.
func (r Route) Responses() []StatusResponse {
	return append([]StatusResponse(nil), r.responses...)
}

// Auth returns the declared authentication requirement, empty if none.
func (r Route) Auth() Auth { return r.auth }

// Summary returns the one-line summary.
func (r Route) Summary() string { return r.summary }

// Description returns the detailed description.
func (r Route) Description() string { return r.description }

// Tags returns a copy of the route's tags. Nil when none were declared.
func (r Route) Tags() []string {
	if r.tags == nil {
		return nil
	}
	return append([]string(nil), r.tags...)
}

// Deprecated reports whether the route is marked deprecated.
func (r Route) Deprecated() bool { return r.deprecated }

// OperationID returns the explicit operation id, empty if none.
func (r Route) OperationID() string { return r.operationID }

// ErrorBody is the conventional error payload shape used with
// WithErrorResponse.
func ErrorBody() *schema.Schema {
	return schema.Object(schema.F("error", schema.String()))
}
