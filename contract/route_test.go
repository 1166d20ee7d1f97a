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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobosmarton/typeful-api/schema"
)

func TestRouteFactories(t *testing.T) {
	t.Parallel()

	resp := schema.Object(schema.F("ok", schema.Bool()))

	tests := []struct {
		name   string
		route  Route
		method string
	}{
		{"get", GET("/things", resp), http.MethodGet},
		{"post", POST("/things", resp), http.MethodPost},
		{"put", PUT("/things/:id", resp), http.MethodPut},
		{"patch", PATCH("/things/:id", resp), http.MethodPatch},
		{"delete", DELETE("/things/:id", resp), http.MethodDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.method, tt.route.Method())
			assert.NotNil(t, tt.route.Response())
		})
	}
}

func TestRouteImmutability(t *testing.T) {
	t.Parallel()

	base := GET("/things", schema.Object(schema.F("ok", schema.Bool())))

	a := base.WithTags("alpha").WithSummary("first branch")
	b := base.WithTags("beta").WithDeprecated()

	assert.Nil(t, base.Tags())
	assert.Empty(t, base.Summary())
	assert.False(t, base.Deprecated())

	assert.Equal(t, []string{"alpha"}, a.Tags())
	assert.Equal(t, "first branch", a.Summary())
	assert.False(t, a.Deprecated())

	assert.Equal(t, []string{"beta"}, b.Tags())
	assert.True(t, b.Deprecated())
	assert.Empty(t, b.Summary())
}

func TestRouteWithTagsAppendsOnCopy(t *testing.T) {
	t.Parallel()

	r := GET("/t", schema.Bool()).WithTags("one")
	r2 := r.WithTags("two")

	assert.Equal(t, []string{"one"}, r.Tags())
	assert.Equal(t, []string{"one", "two"}, r2.Tags())
}

func TestRouteWithErrorResponse(t *testing.T) {
	t.Parallel()

	r := GET("/t", schema.Bool()).
		WithErrorResponse(http.StatusNotFound, ErrorBody()).
		WithErrorResponse(http.StatusUnauthorized, ErrorBody())

	responses := r.Responses()
	require.Len(t, responses, 2)
	assert.Equal(t, http.StatusNotFound, responses[0].Code)
	assert.Equal(t, "Not Found", responses[0].Description)
	assert.Equal(t, http.StatusUnauthorized, responses[1].Code)
	assert.Equal(t, "Unauthorized", responses[1].Description)
}

func TestRouteWithResponseHasNoDescription(t *testing.T) {
	t.Parallel()

	r := GET("/t", schema.Bool()).WithResponse(299, schema.Bool())

	responses := r.Responses()
	require.Len(t, responses, 1)
	assert.Equal(t, 299, responses[0].Code)
	assert.Empty(t, responses[0].Description)
}

func TestRouteAuthAndBody(t *testing.T) {
	t.Parallel()

	body := schema.Object(schema.F("name", schema.String()))
	r := POST("/t", schema.Bool()).WithBody(body).WithAuth(AuthBearer)

	assert.Equal(t, AuthBearer, r.Auth())
	assert.NotNil(t, r.Body())
	assert.Equal(t, AuthNone, POST("/t", schema.Bool()).Auth())
}

func TestErrorBodyShape(t *testing.T) {
	t.Parallel()

	d := ErrorBody().Introspect()
	assert.Equal(t, "object", d.Type)
	assert.Equal(t, []string{"error"}, d.PropertyNames())
	assert.Equal(t, "string", d.Properties["error"].Type)
}
