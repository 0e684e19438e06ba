package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lexi/internal/jagriti/handler"
	"lexi/internal/platform/config"
	httpmetrics "lexi/internal/platform/metrics"
	"lexi/internal/platform/middleware"
	"lexi/pkg/platform/httputil"
	"lexi/pkg/platform/middleware/admin"
	"lexi/pkg/platform/middleware/metadata"
	"lexi/pkg/platform/middleware/requesttime"
)

const appName = "lexi"

type routerDeps struct {
	cfg         config.Config
	logger      *slog.Logger
	service     handler.Service
	cache       handler.CacheInvalidator
	httpMetrics *httpmetrics.Metrics
	gatherer    prometheus.Gatherer
}

// newRouter wires all public endpoints behind the shared middleware chain.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Recovery(d.logger))
	r.Use(middleware.Logger(d.logger))
	r.Use(d.httpMetrics.LatencyMiddleware)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"name": appName, "version": version})
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(d.cfg.Server.RequestTimeout))
		r.Use(middleware.ContentTypeJSON)
		handler.New(d.service, d.logger).Register(r)
	})

	if d.cfg.Server.AdminToken != "" {
		r.Group(func(r chi.Router) {
			r.Use(admin.RequireAdminToken(d.cfg.Server.AdminToken, d.logger))
			handler.NewAdmin(d.cache, d.logger).Register(r)
		})
	}
	return r
}
