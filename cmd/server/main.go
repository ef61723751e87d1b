package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/grubdash-api/internal/config"
	"github.com/Lixing-Zhang/grubdash-api/internal/handlers"
	"github.com/Lixing-Zhang/grubdash-api/internal/idgen"
	"github.com/Lixing-Zhang/grubdash-api/internal/repository"
	"github.com/Lixing-Zhang/grubdash-api/internal/seed"
	"github.com/Lixing-Zhang/grubdash-api/internal/server"
	"github.com/Lixing-Zhang/grubdash-api/internal/service"
	"github.com/Lixing-Zhang/grubdash-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	log.Info("starting orders api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	orderRepo := repository.NewInMemoryOrderRepository()
	ids := idgen.New(uint(cfg.IDs.FilterCapacity))

	if len(cfg.Seed.Sources) > 0 {
		log.Info("loading seed orders...", "sources", cfg.Seed.Sources)
		orders, err := seed.NewLoader().Load(context.Background(), cfg.Seed.Sources)
		if err != nil {
			log.Error("failed to load seed orders", "error", err)
			os.Exit(1)
		}
		if err := seed.Populate(context.Background(), orderRepo, ids, orders); err != nil {
			log.Error("failed to store seed orders", "error", err)
			os.Exit(1)
		}
		log.Info("seed orders loaded", "total_orders", orderRepo.Count())
	}

	orderService := service.NewOrderService(orderRepo, ids, log)

	healthHandler := handlers.NewHealthHandler(orderRepo, version, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	router := server.NewRouter(orderHandler, healthHandler, log, server.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
