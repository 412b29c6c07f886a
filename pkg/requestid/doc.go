// Package requestid extracts and validates the X-Request-Id header of inbound
// HTTP requests.
//
// Every request ends up with a canonical identifier: a lowercase, trimmed
// UUIDv7 string. When the client omits the header (or sends only whitespace)
// a new UUIDv7 is generated. When the header is present it must hold a UUIDv7;
// anything else is rejected with 400 Bad Request and never silently replaced.
//
// # Overview
//
//   - Extract / (*Extractor).Extract: the framework-agnostic core. Takes the
//     request headers and returns the ID or a *ValidationError.
//
//   - Middleware and HandlerFunc: net/http adapters. Middleware stores the ID
//     in the request context; HandlerFunc passes it to the handler directly.
//
//   - RenderError and RenderJSONError: swappable ErrorRenderer functions
//     turning extraction errors into responses. ToHTTPError exposes the
//     underlying mapping.
//
//   - WithContext, FromContext and FromRequest: context helpers.
//
//   - LoggerExtractor: injects the ID into slog records built by pkg/logger.
//
// # Usage
//
//	import (
//		"net/http"
//
//		"github.com/dmitrymomot/xrequestid/pkg/requestid"
//	)
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		w.Write([]byte("hello, your request id is " + id))
//	}))
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// Custom configuration:
//
//	ex := requestid.New(
//		requestid.WithLogger(log),
//		requestid.WithErrorRenderer(requestid.RenderJSONError),
//		requestid.WithGenerator(myGenerator),
//	)
//	r := chi.NewRouter()
//	r.Use(ex.Middleware)
//
// # Error Handling
//
// Rejected values produce a *ValidationError matching ErrNotAUUID or
// ErrNotVersion7 via errors.Is. The default renderer writes one of:
//
//	400 Invalid X-Request-Id : Not a valid UUID
//	400 Invalid X-Request-Id : Not an UUID v7
//
// Generator failures wrap ErrGenerate and are rendered as 500.
package requestid
