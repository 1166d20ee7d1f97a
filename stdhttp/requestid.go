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
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the header the request-ID middleware reads and writes.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDConfig controls the request-ID middleware.
type RequestIDConfig struct {
	// TrustIncoming reuses a client-supplied request ID when present and
	// a valid UUID. When false a fresh ID is always generated.
	TrustIncoming bool
}

// RequestID returns middleware that attaches a UUID request ID to the
// request context and echoes it in the response headers.
func RequestID(cfg RequestIDConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cfg.TrustIncoming {
				if incoming := r.Header.Get(RequestIDHeader); uuid.Validate(incoming) == nil {
					id = incoming
				}
			}
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the request ID stored by the RequestID middleware,
// or an empty string when the middleware is not installed.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
