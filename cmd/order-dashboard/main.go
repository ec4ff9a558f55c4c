package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/LavaJover/shvark-order-intake/internal/app/setup"
	"github.com/LavaJover/shvark-order-intake/internal/config"
	"github.com/LavaJover/shvark-order-intake/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-order-intake/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	lg, err := logger.New(cfg.LogConfig, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	lg = lg.With("service", "order-dashboard")

	deps, err := setup.InitializeDependencies(cfg, lg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	ucs := setup.InitializeUseCases(deps)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handlers.NewRouter(handlers.RouterDeps{
		Handler:  handlers.NewOrderHandler(ucs.DashboardUsecase, lg),
		Metrics:  deps.Metrics,
		Gatherer: deps.Registry,
		Logger:   lg,
	})
	if err != nil {
		log.Fatalf("failed to init router: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	health := grpcapi.NewHealthServer("order-dashboard", lg)

	go func() {
		lg.Info("HTTP server started", "addr", cfg.HTTPAddr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve http: %v", err)
		}
	}()
	go func() {
		if err := health.Serve(cfg.GRPCAddr()); err != nil {
			lg.Error("health server failed", "error", err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("HTTP server shutdown failed", "error", err.Error())
	}
	health.Stop()
	if err := deps.Close(); err != nil {
		lg.Error("failed to release resources", "error", err.Error())
	}
	lg.Info("shutdown complete")
}
