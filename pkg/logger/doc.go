// Package logger builds log/slog loggers with per-environment defaults and
// context-aware attribute injection.
//
// New returns a *slog.Logger configured through functional options. Context
// extractors registered with WithContextExtractors run on every record, which
// is how request-scoped values such as the request ID end up in the output:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "orders"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "order created") // includes request_id
//
// Attribute helpers (Error, RequestID, Component) keep key names consistent
// across packages.
package logger
