// Package httpserver runs an http.Handler with configurable timeouts,
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and slog
// logging.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors
// with ErrShutdown. HealthCheckHandler provides liveness/readiness probes.
package httpserver
