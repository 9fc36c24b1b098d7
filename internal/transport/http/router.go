// Package httptransport assembles the public router. Transport concerns
// only; business logic stays in the service packages.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	callbackhandler "sscs-bulk-scan/internal/callback/handler"
	"sscs-bulk-scan/internal/platform/middleware"
)

// NewRouter wires all public endpoints.
func NewRouter(callbacks *callbackhandler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Token)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"UP"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	callbacks.Register(r)

	return r
}
