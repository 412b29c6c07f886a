package requestid

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/xrequestid/pkg/logger"
)

// Middleware validates X-Request-Id with the default Extractor.
func Middleware(next http.Handler) http.Handler {
	return defaultExtractor.Middleware(next)
}

// Middleware stores the request ID in the request context for next.
// Requests carrying an invalid ID are rejected and next is not called.
// The ID is not echoed in the response headers.
func (e *Extractor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := e.fromRequest(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// HandlerFunc adapts fn so it receives the validated request ID as an argument.
// It is the per-route alternative to Middleware.
//
//	r.Get("/orders", requestid.HandlerFunc(func(w http.ResponseWriter, r *http.Request, id string) {
//		...
//	}))
func HandlerFunc(fn func(w http.ResponseWriter, r *http.Request, requestID string)) http.HandlerFunc {
	return defaultExtractor.HandlerFunc(fn)
}

// HandlerFunc adapts fn so it receives the validated request ID as an argument.
// The ID is also stored in the request context.
func (e *Extractor) HandlerFunc(fn func(w http.ResponseWriter, r *http.Request, requestID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := e.fromRequest(w, r)
		if !ok {
			return
		}
		fn(w, r.WithContext(WithContext(r.Context(), requestID)), requestID)
	}
}

// fromRequest extracts the ID or writes the rejection response.
func (e *Extractor) fromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID, err := e.Extract(r.Header)
	if err == nil {
		return requestID, true
	}

	level := slog.LevelError
	if IsValidationError(err) {
		level = slog.LevelWarn
	}
	e.logger.LogAttrs(r.Context(), level, "rejected request id",
		logger.Error(err),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("requestid"),
	)
	e.render(w, r, err)
	return "", false
}
