package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/user/profile-resolver/internal/delivery/http/middleware"
)

// New builds the ops surface served while a run is in flight: liveness and
// Prometheus metrics.
func New(logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
