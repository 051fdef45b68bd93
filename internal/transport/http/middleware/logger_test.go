package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLogged(t *testing.T, h http.Handler, method, path string) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	chain := chimiddleware.RequestID(RequestLogger(logger)(Recover(h)))
	chain.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, path, nil))

	var rec map[string]interface{}
	require.NoError(t, json.NewDecoder(&buf).Decode(&rec), buf.String())
	return rec
}

func TestRequestLogger_WritesJSONRecord(t *testing.T) {
	rec := serveLogged(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}), http.MethodPost, "/api/contact")

	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "request completed", rec["msg"])
	assert.Equal(t, http.MethodPost, rec["method"])
	assert.Equal(t, "/api/contact", rec["path"])
	assert.Equal(t, float64(http.StatusCreated), rec["status"])
	assert.Equal(t, float64(5), rec["bytes"])
	assert.NotEmpty(t, rec["request_id"])
	assert.Contains(t, rec, "duration_ms")
}

func TestRequestLogger_ServerErrorsLogAtError(t *testing.T) {
	rec := serveLogged(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), http.MethodGet, "/api/health-check/ping")

	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), rec["status"])
}
