package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/romangod6/content-platform/config"
	"github.com/romangod6/content-platform/internal/api"
	"github.com/romangod6/content-platform/internal/articles"
	"github.com/romangod6/content-platform/internal/hub"
	"github.com/romangod6/content-platform/internal/messaging"
	"github.com/romangod6/content-platform/internal/storage"
	"github.com/romangod6/content-platform/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewComponentLogger("api")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	// Initialize storage
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Initialize database tables
	if err := store.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database tables: %v", err)
	}

	// Initialize event publisher
	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize publisher: %v", err)
	}
	defer publisher.Close()

	notificationHub := hub.NewHub()
	defer notificationHub.Close()

	createHandler := articles.NewCreateArticleHandler(store, publisher)

	// Initialize API server
	server := api.NewServer(cfg.Server.Port, cfg.Server.AllowedOrigins, createHandler, notificationHub)

	// Start the API server
	go func() {
		logger.LogInfo("Starting API server on port %d", cfg.Server.Port)
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	// Wait for shutdown
	waitForShutdown(server, logger)
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Database.Driver == "sqlite" {
		return storage.NewSQLiteStore(cfg.Database.URL)
	}
	return storage.NewPostgresStore(cfg.Database.URL)
}

func newPublisher(cfg *config.Config, logger *utils.ComponentLogger) (messaging.Publisher, error) {
	if cfg.Broker.URL == "" {
		logger.LogInfo("No broker configured, using in-memory publisher")
		return messaging.NewMemoryPublisher(), nil
	}

	logger.LogInfo("Connecting to broker at %s (exchange %s)", cfg.Broker.URL, cfg.Broker.Exchange)
	return messaging.NewRabbitMQPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
}

func waitForShutdown(server *api.Server, logger *utils.ComponentLogger) {
	// Handle system signals for shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.LogInfo("Shutting down...")

	// Graceful server shutdown
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.LogError("Error shutting down server: %v", err)
	}
	logger.LogInfo("Server shut down gracefully")
}
