package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xrequestid/pkg/logger"
	"github.com/dmitrymomot/xrequestid/pkg/requestid"
)

func newTestRouter(t *testing.T, cfg Config) (http.Handler, *prometheus.Registry, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	reg := prometheus.NewRegistry()
	return newRouter(cfg, log, reg), reg, buf
}

func TestRouter_Whoami(t *testing.T) {
	t.Parallel()

	t.Run("returns canonical request id and logs it", func(t *testing.T) {
		t.Parallel()
		router, _, buf := newTestRouter(t, Config{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("x-request-id", "0196583C-4D2A-7087-9BEB-6214D18EC924 ")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body whoamiResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "0196583c-4d2a-7087-9beb-6214d18ec924", body.RequestID)
		assert.Contains(t, buf.String(), `"request_id":"0196583c-4d2a-7087-9beb-6214d18ec924"`)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newTestRouter(t, Config{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body whoamiResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NoError(t, requestid.Validate(body.RequestID))
	})

	t.Run("plain text rejection", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newTestRouter(t, Config{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid X-Request-Id : Not a valid UUID", rec.Body.String())
	})

	t.Run("json rejection", func(t *testing.T) {
		t.Parallel()
		router, _, _ := newTestRouter(t, Config{JSONErrors: true})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "00000000-0000-4000-8000-000000000000")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Invalid X-Request-Id : Not an UUID v7"`)
	})
}

func TestRouter_ProbesIgnoreRequestID(t *testing.T) {
	t.Parallel()
	router, _, _ := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "garbage")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()
	router, reg, _ := newTestRouter(t, Config{})

	for _, v := range []string{"", "nope", "0196583c-4d2a-7087-9beb-6214d18ec924"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if v != "" {
			req.Header.Set("X-Request-Id", v)
		}
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	expected := `
# HELP xrequestid_request_id_extractions_total Request ID extractions by outcome
# TYPE xrequestid_request_id_extractions_total counter
xrequestid_request_id_extractions_total{outcome="accepted"} 1
xrequestid_request_id_extractions_total{outcome="generated"} 1
xrequestid_request_id_extractions_total{outcome="not_a_uuid"} 1
xrequestid_request_id_extractions_total{outcome="not_uuid_v7"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "xrequestid_request_id_extractions_total"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "xrequestid_request_id_extractions_total")
}
