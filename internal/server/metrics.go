package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MetricConversions counts conversions served by tool
	MetricConversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorstudio_conversions_total",
		Help: "Total color conversions by tool",
	}, []string{"op"})

	// MetricClipped counts conversions whose input was clipped
	MetricClipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorstudio_clipped_total",
		Help: "Total conversions that clipped out-of-range input",
	}, []string{"op"})

	// MetricHexErrors counts rejected hex strings
	MetricHexErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "colorstudio_hex_errors_total",
		Help: "Total malformed hex colors rejected",
	})
)

func observe(op string, clipped bool) {
	MetricConversions.WithLabelValues(op).Inc()
	if clipped {
		MetricClipped.WithLabelValues(op).Inc()
	}
}

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
	log    *slog.Logger
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string, logger *slog.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: logger,
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		m.log.Info("metrics listening", "addr", m.server.Addr)
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.log.Error("metrics server error", "error", err)
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
