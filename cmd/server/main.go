package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"lexi/internal/jagriti/cache"
	jagritimetrics "lexi/internal/jagriti/metrics"
	"lexi/internal/jagriti/resolver"
	"lexi/internal/jagriti/service"
	"lexi/internal/jagriti/upstream"
	"lexi/internal/platform/config"
	"lexi/internal/platform/httpserver"
	"lexi/internal/platform/logger"
	httpmetrics "lexi/internal/platform/metrics"
)

const shutdownTimeout = 10 * time.Second

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Server.LogLevel, cfg.Server.LogFormat)
	if err != nil {
		slog.Error("invalid logger configuration", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := buildApp(cfg, log, reg)
	if err != nil {
		log.Error("failed to initialise", "error", err)
		os.Exit(1)
	}

	srv := httpserver.New(cfg.Server.Addr, app.router, cfg.Server.RequestTimeout)
	go func() {
		log.Info("starting lexi", "addr", cfg.Server.Addr, "version", version, "upstream", cfg.Jagriti.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

type app struct {
	router http.Handler
}

// buildApp constructs the upstream client, reference cache, resolver, and
// search service, and mounts them on a router. All metrics go to reg, which
// /metrics serves.
func buildApp(cfg config.Config, log *slog.Logger, reg *prometheus.Registry) (*app, error) {
	jm := jagritimetrics.NewWith(reg)

	client, err := upstream.New(upstream.Config{
		BaseURL:   cfg.Jagriti.BaseURL,
		UserAgent: cfg.Jagriti.UserAgent,
		Timeout:   cfg.Jagriti.Timeout,
	}, upstream.WithLogger(log), upstream.WithMetrics(jm))
	if err != nil {
		return nil, err
	}

	refCache, err := cache.New(client, cache.WithLogger(log), cache.WithMetrics(jm))
	if err != nil {
		return nil, err
	}
	res, err := resolver.New(refCache)
	if err != nil {
		return nil, err
	}
	svc, err := service.New(client, refCache, res,
		service.WithLogger(log),
		service.WithMetrics(jm),
		service.WithFromDate(cfg.Jagriti.FromDate()),
	)
	if err != nil {
		return nil, err
	}

	router := newRouter(routerDeps{
		cfg:         cfg,
		logger:      log,
		service:     svc,
		cache:       refCache,
		httpMetrics: httpmetrics.NewWith(reg),
		gatherer:    reg,
	})
	return &app{router: router}, nil
}
