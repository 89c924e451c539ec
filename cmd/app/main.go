package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/steppeworks/CryptoAul_Go/internal/bootstrap"
	"github.com/steppeworks/CryptoAul_Go/internal/catalog"
	"github.com/steppeworks/CryptoAul_Go/internal/config"
	"github.com/steppeworks/CryptoAul_Go/internal/game"
	"github.com/steppeworks/CryptoAul_Go/internal/server"
	"github.com/steppeworks/CryptoAul_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info("Starting CryptoAul", "version", cfg.Version, "environment", cfg.Environment)

	ctx := context.Background()

	cat, err := catalog.Load(ctx, catalog.DefaultPaths())
	if err != nil {
		log.Fatalf("Failed to load game catalog: %v", err)
	}

	store, dbPool, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	initial := bootstrap.LoadInitialState(ctx, store)

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize event system: %v", err)
	}

	gameService := game.NewService(cat, store, publisher, initial)

	// Roll the daily quests immediately if the save crossed a day offline
	if _, err := gameService.RefreshDailyQuests(ctx); err != nil {
		slog.Error("Initial daily quest refresh failed", "error", err)
	}

	dailyWorker := worker.NewDailyQuestWorker(gameService, cfg.DailyPollInterval)
	dailyWorker.Start()

	srv := server.NewServer(cfg.Port, cfg.Version, cfg.Environment, store, gameService, cat)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server stopped unexpectedly", "error", err)
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		DailyQuestWorker:   dailyWorker,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})
}
