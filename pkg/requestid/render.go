package requestid

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// HTTPError is the transport-level form of an extraction error.
type HTTPError struct {
	Code    int    // HTTP status code
	Key     string // machine-readable code, e.g. "not_a_uuid"
	Message string // client-facing message
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// ErrorRenderer writes the response for a failed extraction.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, err error)

// ToHTTPError maps an extraction error to its HTTP representation.
// Validation errors become 400 Bad Request with the exact client message;
// anything else is an internal error.
func ToHTTPError(err error) HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return HTTPError{
			Code:    http.StatusBadRequest,
			Key:     string(verr.Kind),
			Message: verr.Message(),
		}
	}
	return HTTPError{
		Code:    http.StatusInternalServerError,
		Key:     "internal_server_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// RenderError writes the error message as a plain text body.
// Unlike http.Error, no trailing newline is appended.
func RenderError(w http.ResponseWriter, _ *http.Request, err error) {
	httpErr := ToHTTPError(err)
	h := w.Header()
	h.Del("Content-Length")
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(httpErr.Code)
	_, _ = io.WriteString(w, httpErr.Message)
}

// jsonErrorBody mirrors the error envelope used by JSON APIs.
type jsonErrorBody struct {
	Error jsonErrorDetail `json:"error"`
}

type jsonErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RenderJSONError writes the error as {"error":{"code":...,"message":...}}.
func RenderJSONError(w http.ResponseWriter, _ *http.Request, err error) {
	httpErr := ToHTTPError(err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(jsonErrorBody{
		Error: jsonErrorDetail{Code: httpErr.Key, Message: httpErr.Message},
	})
}
