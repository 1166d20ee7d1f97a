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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	})
	h := RequestID(RequestIDConfig{})(inner)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, uuid.Validate(seen))
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_TrustIncoming(t *testing.T) {
	t.Parallel()

	incoming := uuid.NewString()

	t.Run("reuses a valid incoming id when trusted", func(t *testing.T) {
		t.Parallel()
		h := RequestID(RequestIDConfig{TrustIncoming: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces an invalid incoming id", func(t *testing.T) {
		t.Parallel()
		h := RequestID(RequestIDConfig{TrustIncoming: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		got := w.Header().Get(RequestIDHeader)
		assert.NotEqual(t, "not-a-uuid", got)
		assert.NoError(t, uuid.Validate(got))
	})

	t.Run("ignores the incoming id when not trusted", func(t *testing.T) {
		t.Parallel()
		h := RequestID(RequestIDConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, incoming)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.NotEqual(t, incoming, w.Header().Get(RequestIDHeader))
	})
}

func TestGetRequestID_MissingMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(req.Context()))
}
