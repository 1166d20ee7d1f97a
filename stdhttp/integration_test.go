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

package stdhttp_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dobosmarton/typeful-api/contract"
	"github.com/dobosmarton/typeful-api/openapi"
	"github.com/dobosmarton/typeful-api/schema"
	"github.com/dobosmarton/typeful-api/stdhttp"
)

var _ = Describe("Contract Serving", Label("integration"), func() {
	var server *httptest.Server

	BeforeEach(func() {
		task := schema.Object(
			schema.F("id", schema.String().UUID()),
			schema.F("title", schema.String().MinLen(1)),
			schema.F("status", schema.Enum("open", "done")),
		)
		createTask := schema.Object(
			schema.F("title", schema.String().MinLen(1)),
			schema.F("status", schema.Default(schema.Enum("open", "done"), "open")),
		)

		tasks := contract.NewGroup().
			Tags("tasks").
			Route("list", contract.GET("/", schema.Array(task))).
			Route("create", contract.POST("/", task).
				WithBody(createTask).
				WithAuth(contract.AuthBearer))

		v1 := contract.NewGroup().
			Route("health", contract.GET("/health", schema.Object(
				schema.F("status", schema.String()),
			))).
			Child("tasks", tasks)

		c := contract.New().Version("v1", v1)

		handlers := stdhttp.Handlers{
			"v1.health": func(ctx context.Context, req stdhttp.Request) (any, error) {
				return map[string]any{"status": "ok"}, nil
			},
			"v1.tasks.list": func(ctx context.Context, req stdhttp.Request) (any, error) {
				return []any{}, nil
			},
			"v1.tasks.create": func(ctx context.Context, req stdhttp.Request) (any, error) {
				body := req.Body.(map[string]any)
				return map[string]any{
					"id":     "8f14e45f-ea4b-4c1a-9f0b-2d3c4e5f6a7b",
					"title":  body["title"],
					"status": body["status"],
				}, nil
			},
		}

		gen := openapi.MustNew(
			openapi.WithTitle("Task API", "1.0.0"),
			openapi.WithServer("http://localhost:8080", "local"),
		)
		handler, err := stdhttp.NewHandler(c, gen, handlers,
			stdhttp.WithUI("/docs"),
			stdhttp.WithMiddleware(stdhttp.RequestID(stdhttp.RequestIDConfig{})),
			stdhttp.WithLogger(slog.New(slog.DiscardHandler)),
		)
		Expect(err).NotTo(HaveOccurred())
		server = httptest.NewServer(handler)
	})

	AfterEach(func() {
		server.Close()
	})

	getJSON := func(path string) (*http.Response, map[string]any) {
		resp, err := http.Get(server.URL + path)
		Expect(err).NotTo(HaveOccurred())
		raw, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Body.Close()).To(Succeed())

		var decoded map[string]any
		if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
			Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		}
		return resp, decoded
	}

	It("serves declared routes with request IDs", func() {
		resp, body := getJSON("/v1/health")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body).To(HaveKeyWithValue("status", "ok"))
		Expect(resp.Header.Get(stdhttp.RequestIDHeader)).NotTo(BeEmpty())
	})

	It("validates request bodies and fills defaults", func() {
		resp, err := http.Post(server.URL+"/v1/tasks", "application/json",
			strings.NewReader(`{"title":"write the report"}`))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var created map[string]any
		Expect(json.NewDecoder(resp.Body).Decode(&created)).To(Succeed())
		Expect(created).To(HaveKeyWithValue("title", "write the report"))
		Expect(created).To(HaveKeyWithValue("status", "open"))
	})

	It("rejects invalid bodies with field-level errors", func() {
		resp, err := http.Post(server.URL+"/v1/tasks", "application/json",
			strings.NewReader(`{"title":"","status":"bogus"}`))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusUnprocessableEntity))

		var failure map[string]any
		Expect(json.NewDecoder(resp.Body).Decode(&failure)).To(Succeed())
		Expect(failure).To(HaveKeyWithValue("error", "validation failed"))
		Expect(failure).To(HaveKeyWithValue("in", "body"))
		Expect(failure["fields"]).NotTo(BeEmpty())
	})

	It("serves the generated document with working revalidation", func() {
		resp, doc := getJSON("/api-doc")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(doc).To(HaveKeyWithValue("openapi", "3.0.0"))

		paths := doc["paths"].(map[string]any)
		Expect(paths).To(HaveKey("/v1/health"))
		Expect(paths).To(HaveKey("/v1/tasks"))

		// The Bearer scheme is referenced, so it appears in components.
		components := doc["components"].(map[string]any)
		schemes := components["securitySchemes"].(map[string]any)
		Expect(schemes).To(HaveKey("Bearer"))

		req, err := http.NewRequest(http.MethodGet, server.URL+"/api-doc", nil)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("If-None-Match", resp.Header.Get("ETag"))
		revalidated, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer revalidated.Body.Close()
		Expect(revalidated.StatusCode).To(Equal(http.StatusNotModified))
	})

	It("serves the documentation UI", func() {
		resp, err := http.Get(server.URL + "/docs")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		page, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(page)).To(ContainSubstring("swagger-ui"))
		Expect(string(page)).To(ContainSubstring("/api-doc"))
	})
})
