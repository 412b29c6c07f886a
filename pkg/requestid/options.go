package requestid

import "log/slog"

// Option configures an Extractor.
type Option func(*Extractor)

// WithGenerator replaces the UUIDv7 generator used for requests without an ID.
// Nil generators are ignored.
func WithGenerator(g Generator) Option {
	return func(e *Extractor) {
		if g != nil {
			e.generate = g
		}
	}
}

// WithErrorRenderer replaces the function that writes rejection responses.
// Nil renderers are ignored.
func WithErrorRenderer(r ErrorRenderer) Option {
	return func(e *Extractor) {
		if r != nil {
			e.render = r
		}
	}
}

// WithLogger sets the logger used to report rejected request IDs.
// If nil, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers a callback receiving the outcome of every extraction.
func WithObserver(o Observer) Option {
	return func(e *Extractor) { e.observe = o }
}
