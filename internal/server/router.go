package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"backoffice/internal/catalog"
	"backoffice/internal/infrastructure/metrics"
	ordercontroller "backoffice/internal/order/controller"
	"backoffice/internal/user"
)

// NewRouter wires every module's endpoints plus health and metrics.
func NewRouter(
	orders *ordercontroller.Controller,
	users *user.Controller,
	cat *catalog.Module,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestMetrics(m))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", orders.HandleList)
		r.Get("/stats", orders.HandleStats)
		r.Post("/refresh", orders.HandleRefresh)
		r.Post("/{orderID}/status", orders.HandleUpdateStatus)
		r.Delete("/{orderID}", orders.HandleDelete)
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", users.HandleList)
		r.Get("/profile", users.HandleProfile)
		r.Delete("/{userID}", users.HandleRemove)
	})

	r.Route("/api/brands", func(r chi.Router) {
		r.Get("/", cat.Brands.HandleList)
		r.Post("/", cat.Brands.HandleCreate)
		r.Put("/{entryID}", cat.Brands.HandleUpdate)
		r.Delete("/{entryID}", cat.Brands.HandleDelete)
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", cat.Categories.HandleList)
		r.Post("/", cat.Categories.HandleCreate)
		r.Put("/{entryID}", cat.Categories.HandleUpdate)
		r.Delete("/{entryID}", cat.Categories.HandleDelete)
	})

	logger.Info("router configured")
	return r
}

func requestMetrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.RequestsTotal.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
			m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}
