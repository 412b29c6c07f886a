// Package metrics exports request ID extraction outcomes as Prometheus
// counters.
//
//	reg := prometheus.NewRegistry()
//	ex := requestid.New(requestid.WithObserver(metrics.NewObserver(reg)))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/xrequestid/pkg/requestid"
)

const defaultNamespace = "xrequestid"

type config struct {
	namespace string
	subsystem string
}

// Option configures the observer metrics.
type Option func(*config)

// WithNamespace sets the metric namespace. Empty values are ignored.
func WithNamespace(ns string) Option {
	return func(c *config) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithSubsystem sets the metric subsystem.
func WithSubsystem(s string) Option {
	return func(c *config) { c.subsystem = s }
}

// NewObserver registers <namespace>_request_id_extractions_total{outcome}
// with reg and returns an observer incrementing it.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewObserver(reg prometheus.Registerer, opts ...Option) requestid.Observer {
	cfg := &config{namespace: defaultNamespace}
	for _, opt := range opts {
		opt(cfg)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	extractions := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.namespace,
		Subsystem: cfg.subsystem,
		Name:      "request_id_extractions_total",
		Help:      "Request ID extractions by outcome",
	}, []string{"outcome"}) // outcome=generated|accepted|not_a_uuid|not_uuid_v7

	// pre-initialize so every series is exported from the first scrape
	for _, o := range []requestid.Outcome{
		requestid.OutcomeGenerated,
		requestid.OutcomeAccepted,
		requestid.OutcomeNotAUUID,
		requestid.OutcomeNotVersion7,
	} {
		extractions.WithLabelValues(string(o))
	}

	return func(o requestid.Outcome) {
		extractions.WithLabelValues(string(o)).Inc()
	}
}
