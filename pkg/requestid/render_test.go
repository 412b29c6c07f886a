package requestid_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xrequestid/pkg/requestid"
)

func TestToHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    int
		key     string
		message string
	}{
		{
			name:    "not a uuid",
			err:     requestid.Validate("nope"),
			code:    http.StatusBadRequest,
			key:     "not_a_uuid",
			message: "Invalid X-Request-Id : Not a valid UUID",
		},
		{
			name:    "not version 7",
			err:     requestid.Validate("00000000-0000-4000-8000-000000000000"),
			code:    http.StatusBadRequest,
			key:     "not_uuid_v7",
			message: "Invalid X-Request-Id : Not an UUID v7",
		},
		{
			name:    "wrapped validation error",
			err:     errors.Join(errors.New("context"), requestid.Validate("nope")),
			code:    http.StatusBadRequest,
			key:     "not_a_uuid",
			message: "Invalid X-Request-Id : Not a valid UUID",
		},
		{
			name:    "internal error",
			err:     requestid.ErrGenerate,
			code:    http.StatusInternalServerError,
			key:     "internal_server_error",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			httpErr := requestid.ToHTTPError(tt.err)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.key, httpErr.Key)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Equal(t, tt.message, httpErr.Error())
		})
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	requestid.RenderError(rec, httptest.NewRequest(http.MethodGet, "/", nil), requestid.Validate("nope"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid X-Request-Id : Not a valid UUID", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRenderJSONError(t *testing.T) {
	t.Parallel()

	ex := requestid.New(requestid.WithErrorRenderer(requestid.RenderJSONError))
	handler := ex.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "00000000-0000-4000-8000-000000000000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_uuid_v7", body.Error.Code)
	assert.Equal(t, "Invalid X-Request-Id : Not an UUID v7", body.Error.Message)
}
