package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"stoik.com/emailscore/internal/core/service"
	"stoik.com/emailscore/internal/metrics"
	"stoik.com/emailscore/internal/server"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			log.Warnf("Unknown LOG_LEVEL %q, keeping info", level)
		} else {
			log.SetLevel(parsed)
		}
	}

	// Get configuration from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	verificationService := service.NewVerificationService(metrics.New())

	// Create HTTP server
	httpServer := server.NewHTTPServer(verificationService)

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Verifier service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down verifier service...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
