package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the cipher service metrics.
	Registry = prometheus.NewRegistry()

	// Sessions is how many websocket sessions own an engine right now
	Sessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mirrorfield_sessions",
		Help: "Number of open cipher sessions",
	})
	// Chars counts bytes run through session engines
	Chars = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mirrorfield_chars_total",
		Help: "Number of characters crypted",
	})
	// Errors counts session failures by kind
	Errors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mirrorfield_errors_total",
		Help: "Number of cipher session errors",
	}, []string{"kind"})
)

func init() {
	Registry.MustRegister(Sessions, Chars, Errors)
	Registry.MustRegister(prometheus.NewGoCollector())
}

func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
