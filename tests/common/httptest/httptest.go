//go:build unit || e2e

// Package httptest drives a gin engine in-process and checks the JSON it answers.
package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON; a non-empty authToken goes out as a bearer token.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "request body is not JSON-encodable")
		payload = bytes.NewReader(raw)
	}
	return serve(router, method, path, payload, authToken)
}

// PerformRawRequest sends rawBody untouched, for malformed JSON cases.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, rawBody string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, method, path, bytes.NewBufferString(rawBody), "")
}

func serve(router *gin.Engine, method, path string, body io.Reader, authToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
