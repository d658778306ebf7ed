package handler_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/handler"
)

// requestLogs returns every "incoming request" record written to buf.
func requestLogs(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var records []map[string]interface{}
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var record map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		if record["msg"] == "incoming request" {
			records = append(records, record)
		}
	}
	return records
}

func TestRouter_LogsUnmatchedRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"unknown route", http.MethodGet, "/api/nothing-here", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/api/health", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			router := handler.NewRouter(logger, handler.NewHealthHandler(fakePinger{}, logger))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)

			records := requestLogs(t, &buf)
			require.Len(t, records, 1)
			assert.Equal(t, tt.method, records[0]["method"])
			assert.Equal(t, tt.path, records[0]["path"])
			assert.Equal(t, float64(tt.status), records[0]["status"])
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := httptest.NewRequest(http.MethodOptions, "/api/transactions/deposit", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()

		s.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.MethodPost, rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("cross-origin request", func(t *testing.T) {
		s := newTestServer(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		s.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("same-origin request", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := httptest.NewRecorder()

		s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestDocsHandler(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("openapi document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.yaml", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, "openapi: 3.0.3")
		assert.Contains(t, body, "/api/transactions/withdrawal:")
	})

	t.Run("swagger ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), `url: "/api-docs/openapi.yaml"`)
	})
}
