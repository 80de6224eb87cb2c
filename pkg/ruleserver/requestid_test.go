package ruleserver_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/ruleserver"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		keepSame bool
	}{
		{"generated when missing", "", false},
		{"kept when valid", "req_123-abc", true},
		{"replaced when invalid", "bad id!", false},
		{"replaced when too long", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := ruleserver.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = ruleserver.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(ruleserver.RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(ruleserver.RequestIDHeader)
			assert.Equal(t, got, seen)
			if tt.keepSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(ruleserver.RequestIDExtractor()),
	)

	h := ruleserver.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.InfoContext(r.Context(), "handled")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ruleserver.RequestIDHeader, "trace-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"trace-1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "no request")
	assert.NotContains(t, buf.String(), "request_id")
	assert.Empty(t, ruleserver.RequestIDFromContext(context.Background()))
}
