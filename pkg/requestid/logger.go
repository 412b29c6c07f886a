package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/xrequestid/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor that adds the request ID
// under the "request_id" key.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
