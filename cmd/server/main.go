package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/lingoflash/internal/api"
	"github.com/vytor/lingoflash/internal/config"
	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/repository"
	"github.com/vytor/lingoflash/internal/services"
	"github.com/vytor/lingoflash/internal/storage"
	"github.com/vytor/lingoflash/internal/streak"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LingoFlash Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("due_lookahead_seconds=%d", cfg.DueLookaheadSeconds)

	// Open database
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		store.Close()
	}()

	// Initialize repositories
	cards := repository.NewFlashcardRepository(store)
	folders := repository.NewFolderRepository(store)
	settings := repository.NewSettingsRepository(store)
	gamification := repository.NewGamificationRepository(store)

	// Initialize services
	cardService := services.NewCardService(cards, folders)
	folderService := services.NewFolderService(folders, cards)
	studyService := services.NewStudyService(cards, folders, time.Duration(cfg.DueLookaheadSeconds)*time.Second)
	settingsService := services.NewSettingsService(settings)
	statsService := services.NewStatsService(cards)
	streakEngine := streak.NewEngine(gamification)

	srv := &api.Server{
		CardService:     cardService,
		FolderService:   folderService,
		StudyService:    studyService,
		SettingsService: settingsService,
		StatsService:    statsService,
		StreakEngine:    streakEngine,
		Resetter:        store,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("LingoFlash Server Stopped")
	log.Info("===========================================")
}
