package requestid

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header is the canonical request ID header name.
const Header = "X-Request-Id"

// uuidLen is the length of the hyphenated 8-4-4-4-12 UUID form.
const uuidLen = 36

// Extractor turns request headers into a canonical UUIDv7 request ID.
// It is immutable after New and safe for concurrent use.
type Extractor struct {
	generate Generator
	render   ErrorRenderer
	logger   *slog.Logger
	observe  Observer
}

// New returns an Extractor configured with opts.
// Without options it generates IDs with uuid.NewV7, renders errors with
// RenderError and discards logs.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		generate: DefaultGenerator,
		render:   RenderError,
		logger:   newNoopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Extract returns the canonical request ID for h using the default Extractor.
func Extract(h http.Header) (string, error) {
	return defaultExtractor.Extract(h)
}

// Extract returns the request ID carried in h.
//
// A missing or blank X-Request-Id header yields a freshly generated UUIDv7.
// A present header is trimmed and lowercased, then must parse as a UUID
// (otherwise ErrNotAUUID) whose version is 7 (otherwise ErrNotVersion7).
// Invalid values are never replaced with a generated ID.
func (e *Extractor) Extract(h http.Header) (string, error) {
	id, outcome, err := e.extract(h)
	if e.observe != nil && outcome != "" {
		e.observe(outcome)
	}
	return id, err
}

func (e *Extractor) extract(h http.Header) (string, Outcome, error) {
	value := strings.ToLower(strings.TrimSpace(lookup(h)))
	if value == "" {
		id, err := e.generate()
		if err != nil {
			return "", "", errors.Join(ErrGenerate, err)
		}
		return id.String(), OutcomeGenerated, nil
	}

	if err := Validate(value); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && verr.Kind == KindNotVersion7 {
			return "", OutcomeNotVersion7, err
		}
		return "", OutcomeNotAUUID, err
	}

	return value, OutcomeAccepted, nil
}

// Validate checks that id, taken as is, is a hyphenated UUID with version 7.
// Callers are expected to pass an already normalized value.
func Validate(id string) error {
	if len(id) != uuidLen {
		return &ValidationError{Kind: KindNotAUUID, Value: id}
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return &ValidationError{Kind: KindNotAUUID, Value: id, Err: err}
	}
	if parsed.Version() != 7 {
		return &ValidationError{Kind: KindNotVersion7, Value: id}
	}
	return nil
}

// lookup returns the first X-Request-Id value, matching the header name
// case-insensitively even when h was built without canonical keys.
func lookup(h http.Header) string {
	if h == nil {
		return ""
	}
	if v := h.Get(Header); v != "" {
		return v
	}
	for name, values := range h {
		if len(values) > 0 && strings.EqualFold(name, Header) {
			return values[0]
		}
	}
	return ""
}
