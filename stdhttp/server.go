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
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/dobosmarton/typeful-api/contract"
	"github.com/dobosmarton/typeful-api/openapi"
	"github.com/dobosmarton/typeful-api/schema"
)

const defaultDocsPath = "/api-doc"

var pathParamPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// Option configures the handler built by NewHandler.
type Option func(*serverConfig)

type serverConfig struct {
	logger      *slog.Logger
	docsPath    string
	docsEnabled bool
	uiPath      string
	maxBodySize int64
	middleware  []func(http.Handler) http.Handler
	named       map[string]func(http.Handler) http.Handler
}

// WithLogger sets the logger used for skipped routes and handler errors.
func WithLogger(l *slog.Logger) Option {
	return func(c *serverConfig) { c.logger = l }
}

// WithDocsPath changes the path the OpenAPI document is served at.
func WithDocsPath(path string) Option {
	return func(c *serverConfig) { c.docsPath = path }
}

// WithoutDocs disables the OpenAPI document endpoint.
func WithoutDocs() Option {
	return func(c *serverConfig) { c.docsEnabled = false }
}

// WithUI serves a minimal Swagger UI page at the given path, pointed at
// the document endpoint.
func WithUI(path string) Option {
	return func(c *serverConfig) { c.uiPath = path }
}

// WithMaxBodySize caps the size of request bodies in bytes. Zero or
// negative means no explicit limit.
func WithMaxBodySize(n int64) Option {
	return func(c *serverConfig) { c.maxBodySize = n }
}

// WithMiddleware wraps every mounted route and the docs endpoints with
// the given middleware, outermost first.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(c *serverConfig) { c.middleware = append(c.middleware, mw...) }
}

// WithNamedMiddleware registers middleware under an identifier. Groups
// declare middleware by identifier; every route under such a group is
// wrapped with the matching registration. Identifiers declared in the
// contract but never registered are logged and ignored.
func WithNamedMiddleware(name string, mw func(http.Handler) http.Handler) Option {
	return func(c *serverConfig) {
		if c.named == nil {
			c.named = map[string]func(http.Handler) http.Handler{}
		}
		c.named[name] = mw
	}
}

// NewHandler mounts every route of the contract on a ServeMux and returns
// it wrapped in the configured middleware. Routes without a registered
// handler are logged at warn level and skipped. The ServeMux patterns use
// Go 1.22 method matching, so path parameters declared as ":id" become
// "{id}" segments.
func NewHandler(c *contract.Contract, gen *openapi.Generator, handlers Handlers, opts ...Option) (http.Handler, error) {
	cfg := serverConfig{
		logger:      slog.Default(),
		docsPath:    defaultDocsPath,
		docsEnabled: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	mux := http.NewServeMux()
	for _, fr := range contract.Flatten(c, gen.BasePath()) {
		h, ok := handlers[fr.QualifiedName()]
		if !ok {
			cfg.logger.Warn("no handler registered for route, skipping",
				"route", fr.QualifiedName(),
				"method", fr.Route.Method(),
				"path", fr.FullPath,
			)
			continue
		}
		var route http.Handler = endpoint(fr, h, &cfg)
		for i := len(fr.Middleware) - 1; i >= 0; i-- {
			id := fr.Middleware[i]
			mw, ok := cfg.named[id]
			if !ok {
				cfg.logger.Warn("middleware identifier has no registration, ignoring",
					"middleware", id,
					"route", fr.QualifiedName(),
				)
				continue
			}
			route = mw(route)
		}
		pattern := fr.Route.Method() + " " + pathParamPattern.ReplaceAllString(fr.FullPath, "{$1}")
		mux.Handle(pattern, route)
	}

	if cfg.docsEnabled {
		docs, err := newDocsHandler(c, gen)
		if err != nil {
			return nil, err
		}
		mux.Handle("GET "+cfg.docsPath, docs)
		if cfg.uiPath != "" {
			mux.Handle("GET "+cfg.uiPath, uiHandler(cfg.docsPath))
		}
	}

	var h http.Handler = mux
	for i := len(cfg.middleware) - 1; i >= 0; i-- {
		h = cfg.middleware[i](h)
	}
	return h, nil
}

func endpoint(fr contract.FlatRoute, h Handler, cfg *serverConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{HTTP: r}

		if s := fr.Route.Params(); s != nil {
			values := coerceStrings(s.Introspect(), func(name string) (string, bool) {
				v := r.PathValue(name)
				return v, v != ""
			})
			validated, err := s.Validate(values)
			if !respondOnValidation(w, "params", err, cfg) {
				return
			}
			req.Params = validated
		}

		if s := fr.Route.Query(); s != nil {
			q := r.URL.Query()
			values := coerceStrings(s.Introspect(), func(name string) (string, bool) {
				if !q.Has(name) {
					return "", false
				}
				return q.Get(name), true
			})
			validated, err := s.Validate(values)
			if !respondOnValidation(w, "query", err, cfg) {
				return
			}
			req.Query = validated
		}

		if s := fr.Route.Body(); s != nil {
			body := r.Body
			if cfg.maxBodySize > 0 {
				body = http.MaxBytesReader(w, body, cfg.maxBodySize)
			}
			raw, err := io.ReadAll(body)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: "unable to read request body"})
				return
			}
			var decoded any
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &decoded); err != nil {
					writeJSON(w, http.StatusBadRequest, errorBody{Error: "request body is not valid JSON"})
					return
				}
			}
			validated, err := s.Validate(decoded)
			if !respondOnValidation(w, "body", err, cfg) {
				return
			}
			req.Body = validated
		}

		result, err := h(r.Context(), req)
		if err != nil {
			respondError(w, r, err, cfg)
			return
		}
		if result == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}

// respondOnValidation writes the validation error response if err is
// non-nil and reports whether the request may proceed.
func respondOnValidation(w http.ResponseWriter, in string, err error, cfg *serverConfig) bool {
	if err == nil {
		return true
	}
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		writeValidationError(w, in, verr)
		return false
	}
	cfg.logger.Error("schema validation failed", "in", in, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	return false
}

func respondError(w http.ResponseWriter, r *http.Request, err error, cfg *serverConfig) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Status, errorBody{Error: httpErr.Message})
		return
	}
	cfg.logger.Error("handler error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}
