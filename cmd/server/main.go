package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/api"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/config"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/ingest"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Ensure the store directory exists
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o750); err != nil {
		log.Fatalf("Failed to create store directory: %v", err)
	}

	log.Printf("Storing uploaded ledger stores in: %s", cfg.Storage.DataDir)

	// Create ingest services
	tokens, err := ingest.NewTokenService(cfg.Token.Key, cfg.Token.TTL)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}
	uploads := ingest.NewUploadService(cfg.Storage.DataDir, tokens)

	// Create services
	fundService := service.NewFundService()
	positionService := service.NewPositionService()

	// Sweep expired uploads in the background
	sweeper := ingest.NewSweeper(cfg.Storage.DataDir, cfg.Token.TTL, cfg.Sweep.Schedule)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start store sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Create router
	router := api.NewRouter(uploads, fundService, positionService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
