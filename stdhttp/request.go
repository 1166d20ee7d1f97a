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

package stdhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dobosmarton/typeful-api/schema"
)

// Request carries the validated parts of an incoming request.
//
// Body, Query, and Params hold the decoded values after schema validation
// and default filling, or nil when the route declares no schema for that
// part. HTTP exposes the underlying request for headers and context needs
// the contract does not model.
type Request struct {
	Body   any
	Query  any
	Params any
	HTTP   *http.Request
}

// Handler processes a validated request and returns the response payload.
// A nil error produces a 200 JSON response with the returned value. Errors
// of type *Error select their own status code; anything else is a 500.
type Handler func(ctx context.Context, req Request) (any, error)

// Handlers maps dotted qualified route names (for example "v1.products.get")
// to their implementations.
type Handlers map[string]Handler

// Error is an HTTP-aware error a handler can return to control the
// response status code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an *Error with a formatted message.
func Errorf(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

type errorBody struct {
	Error  string              `json:"error"`
	In     string              `json:"in,omitempty"`
	Fields []schema.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeValidationError(w http.ResponseWriter, in string, verr *schema.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{
		Error:  "validation failed",
		In:     in,
		Fields: verr.Fields,
	})
}

// coerceStrings converts query and path values, which arrive as strings,
// into the types the descriptor declares so that schema validation sees
// properly typed values. Unknown or string-typed properties pass through
// unchanged; values that fail to parse are also passed through so the
// validator reports them with a field path.
func coerceStrings(d *schema.Descriptor, get func(name string) (string, bool)) map[string]any {
	out := make(map[string]any)
	if d == nil {
		return out
	}
	for _, name := range d.PropertyNames() {
		raw, ok := get(name)
		if !ok {
			continue
		}
		out[name] = coerceValue(d.Properties[name], raw)
	}
	return out
}

func coerceValue(d *schema.Descriptor, raw string) any {
	if d == nil {
		return raw
	}
	switch d.Type {
	case "integer":
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	case "number":
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case "boolean":
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}
