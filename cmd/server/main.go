package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karim/quizrush/internal/api"
	"github.com/karim/quizrush/internal/config"
	"github.com/karim/quizrush/internal/db"
	"github.com/karim/quizrush/internal/identity"
	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/repository/sqlite"
	"github.com/karim/quizrush/internal/services"
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
	log.Info("QuizRush Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("identity_api_url=%s", cfg.IdentityAPIURL)
	log.Debug("cookie_secure=%t", cfg.CookieSecure)
	log.Debug("session_cookie_max_age=%d", cfg.SessionCookieMaxAge)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories and services
	sessionRepo := sqlite.NewSessionRepository(database)
	resultRepo := sqlite.NewResultRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	gameService := services.NewGameService(sessionRepo, resultRepo, statsRepo)
	statsService := services.NewStatsService(statsRepo, sessionRepo)

	srv := &api.Server{
		DB:            database,
		GameService:   gameService,
		StatsService:  statsService,
		Identity:      identity.New(cfg.IdentityAPIURL, cfg.IdentityAPIKey),
		CookieSecure:  cfg.CookieSecure,
		SessionMaxAge: cfg.SessionCookieMaxAge,
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("QuizRush Server Stopped")
	log.Info("===========================================")
}
