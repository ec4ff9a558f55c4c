package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/LavaJover/shvark-order-intake/internal/app/background"
	"github.com/LavaJover/shvark-order-intake/internal/app/setup"
	"github.com/LavaJover/shvark-order-intake/internal/config"
	"github.com/LavaJover/shvark-order-intake/internal/conversation"
	"github.com/LavaJover/shvark-order-intake/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-order-intake/internal/delivery/telegram"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/logger"
)

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
	lg = lg.With("service", "order-bot")

	deps, err := setup.InitializeDependencies(cfg, lg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	ucs := setup.InitializeUseCases(deps)

	bot, err := telegram.NewBot(cfg.Telegram, lg)
	if err != nil {
		log.Fatalf("failed to init bot: %v", err)
	}
	manager := conversation.NewManager(ucs.OrderUsecase, bot, deps.Metrics, lg)
	dispatcher := conversation.NewDispatcher(manager)

	health := grpcapi.NewHealthServer("order-bot", lg)
	go func() {
		if err := health.Serve(cfg.GRPCAddr()); err != nil {
			lg.Error("health server failed", "error", err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	background.NewBackgroundTasks(manager, deps.Metrics, lg).StartAll(ctx)

	// Blocks until a signal arrives
	bot.Run(ctx, dispatcher)
	lg.Info("shutting down", "active_sessions", manager.ActiveSessions())

	dispatcher.Wait()
	health.Stop()
	if err := deps.Close(); err != nil {
		lg.Error("failed to release resources", "error", err.Error())
	}
	lg.Info("shutdown complete")
}
