package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"backoffice/internal/catalog"
	"backoffice/internal/commons"
	"backoffice/internal/config"
	"backoffice/internal/infrastructure/logger"
	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/upstream"
	"backoffice/internal/order"
	"backoffice/internal/server"
	"backoffice/internal/user"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	up := upstream.New(cfg.Upstream)
	zapLogger.Info("upstream client configured", zap.String("baseUrl", cfg.Upstream.BaseURL))

	orderModule := order.NewModule(up, m, zapLogger)
	userCtrl := user.NewModule(up, m, zapLogger)
	catalogModule := catalog.NewModule(up, m, zapLogger)

	// Warm the order snapshot; the upstream may not be up yet, so a
	// failure here is not fatal.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), cfg.Upstream.Timeout)
	if err := orderModule.Service.Refresh(startupCtx); err != nil {
		zapLogger.Warn("initial order fetch failed", zap.Error(err))
	}
	cancelStartup()

	router := server.NewRouter(orderModule.Controller, userCtrl, catalogModule, m, registry, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
