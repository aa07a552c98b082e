package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpRouter "forex-rate-service/internal/adapter/http"
	"forex-rate-service/internal/adapter/transport"
	"forex-rate-service/internal/config"
	"forex-rate-service/internal/metrics"
	"forex-rate-service/internal/provider"
	"forex-rate-service/internal/service"
	"forex-rate-service/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Log.Level)
	log.Info("Starting forex rate service", "provider", cfg.Rates.Provider, "force_decimal", cfg.Rates.ForceDecimal)

	appMetrics := metrics.NewMetrics()

	registry := provider.NewRegistry(
		provider.NewOpenExchangeRates(cfg.Rates.OpenExchangeBaseURL, cfg.Rates.OpenExchangeAppID),
		provider.NewRatesAPI(cfg.Rates.RatesAPIBaseURL),
	)

	httpTransport := transport.NewHTTPTransport(cfg.Rates.Timeout, log)

	rateService := service.NewRateService(registry, httpTransport, cfg.Rates.Provider, cfg.Rates.ForceDecimal, log)

	handler := httpRouter.NewHandler(rateService, cfg.Rates.ForceDecimal, log, appMetrics)
	router := httpRouter.NewRouter(handler, log, appMetrics)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
