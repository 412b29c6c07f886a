// Command requestid-server is a minimal HTTP service demonstrating the
// requestid middleware with structured logging and Prometheus metrics.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/xrequestid/pkg/config"
	"github.com/dmitrymomot/xrequestid/pkg/environment"
	"github.com/dmitrymomot/xrequestid/pkg/httpserver"
	"github.com/dmitrymomot/xrequestid/pkg/logger"
	"github.com/dmitrymomot/xrequestid/pkg/requestid"
	"github.com/dmitrymomot/xrequestid/pkg/requestid/metrics"
)

// Config is loaded from the environment (and an optional .env file).
type Config struct {
	AppName    string                  `env:"APP_NAME" envDefault:"requestid-server"`
	Env        environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel   string                  `env:"LOG_LEVEL"`
	JSONErrors bool                    `env:"JSON_ERRORS" envDefault:"false"`
	HTTP       httpserver.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), newRouter(cfg, log, reg)); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

// newRouter mounts probes and metrics outside the request ID check so that
// infrastructure traffic is never rejected.
func newRouter(cfg Config, log *slog.Logger, reg *prometheus.Registry) http.Handler {
	renderer := requestid.RenderError
	if cfg.JSONErrors {
		renderer = requestid.RenderJSONError
	}
	ex := requestid.New(
		requestid.WithLogger(log),
		requestid.WithErrorRenderer(renderer),
		requestid.WithObserver(metrics.NewObserver(reg)),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(ex.Middleware)
		r.Get("/", whoami(log))
	})

	return r
}

type whoamiResponse struct {
	RequestID string `json:"request_id"`
}

func whoami(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := requestid.FromContext(r.Context())
		log.DebugContext(r.Context(), "whoami", logger.Component("api"))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(whoamiResponse{RequestID: id}); err != nil {
			log.ErrorContext(r.Context(), "encode response", logger.Error(err))
		}
	}
}
