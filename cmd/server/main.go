package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/api"
	"github.com/gilson1254/catalogo-de-filmes/internal/config"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository/jsonfile"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository/postgres"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repos, err := newRepositories(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	tmdbClient := tmdb.NewClient(cfg)
	services := service.NewServices(repos, tmdbClient, cfg)

	// Initialize router
	router := api.NewRouter(services, tmdbClient, hub)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	hub.Stop()

	log.Println("Server stopped")
}

func newRepositories(cfg *config.Config) (*repository.Repositories, error) {
	switch cfg.StorageDriver {
	case "json":
		store, err := jsonfile.Open(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		log.Printf("Using JSON document store at %s", cfg.DataFile)
		return jsonfile.NewRepositories(store), nil
	case "postgres":
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepositories(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
