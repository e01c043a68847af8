package testutil

import (
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gilson1254/catalogo-de-filmes/internal/api"
	"github.com/gilson1254/catalogo-de-filmes/internal/config"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository/jsonfile"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
)

// TestConfig returns a configuration suitable for testing. The catalog base
// URL must point at a FakeTMDB before any client is built from it.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0", // Random port
		Environment:        "test",
		StorageDriver:      "json",
		JWTSecret:          "test-jwt-secret-key-for-testing-only",
		JWTExpirationHours: 1,
		TMDBAPIKey:         "test-api-key",
		TMDBLanguage:       "pt-BR",
	}
}

// NewTestStore opens a jsonfile store under the test's temp directory.
func NewTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()

	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "database.json"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store
}

// NewTestRepositories returns a repository set backed by a fresh jsonfile
// store, for tests that exercise services without the HTTP surface.
func NewTestRepositories(t *testing.T) *repository.Repositories {
	t.Helper()
	return jsonfile.NewRepositories(NewTestStore(t))
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	TMDB     *FakeTMDB
	Repos    *repository.Repositories
	Services *service.Services
	Hub      *websocket.Hub
	Config   *config.Config
}

// NewTestServer creates a complete test server with all dependencies. The
// catalog client is pointed at a FakeTMDB instance that tests can seed.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	fake := NewFakeTMDB(t)
	cfg := TestConfig()
	cfg.TMDBBaseURL = fake.URL()

	repos := NewTestRepositories(t)
	hub := websocket.NewHub()
	go hub.Run()

	client := tmdb.NewClient(cfg)
	services := service.NewServices(repos, client, cfg)
	router := api.NewRouter(services, client, hub)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		TMDB:     fake,
		Repos:    repos,
		Services: services,
		Hub:      hub,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}

// WebSocketURL returns the WebSocket URL with token and room
func (ts *TestServer) WebSocketURL(token, roomID string) string {
	wsURL := "ws" + ts.Server.URL[4:] // Replace "http" with "ws"
	return fmt.Sprintf("%s/api/v1/ws?token=%s&room=%s", wsURL, token, roomID)
}
