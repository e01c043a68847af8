package api

import (
	"net/http"

	"github.com/gilson1254/catalogo-de-filmes/internal/api/handlers"
	"github.com/gilson1254/catalogo-de-filmes/internal/api/middleware"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, tmdbClient *tmdb.Client, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	roomHandler := handlers.NewRoomHandler(services.Room)
	listHandler := handlers.NewListHandler(services.List, hub)
	noteHandler := handlers.NewNoteHandler(services.Note, hub)
	ratingHandler := handlers.NewRatingHandler(services.Rating, hub)
	sessionHandler := handlers.NewSessionHandler(services.Session, hub)
	discoveryHandler := handlers.NewDiscoveryHandler(services.Discovery)
	catalogHandler := handlers.NewCatalogHandler(tmdbClient)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Catalog routes (public)
		r.Route("/movies", func(r chi.Router) {
			r.Get("/search", catalogHandler.SearchMovies)
			r.Get("/popular", catalogHandler.PopularMovies)
			r.Get("/discover", catalogHandler.DiscoverMovies)
			r.Get("/by-actor", catalogHandler.MoviesByActor)
			r.Get("/{itemID}", catalogHandler.MovieDetails)
			r.Get("/{itemID}/providers", catalogHandler.MovieProviders)
		})
		r.Route("/tv", func(r chi.Router) {
			r.Get("/search", catalogHandler.SearchTV)
			r.Get("/popular", catalogHandler.PopularTV)
			r.Get("/discover", catalogHandler.DiscoverTV)
			r.Get("/{itemID}", catalogHandler.TVDetails)
			r.Get("/{itemID}/providers", catalogHandler.TVProviders)
		})
		r.Get("/genres", catalogHandler.Genres)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/rooms", func(r chi.Router) {
				r.Post("/", roomHandler.Create)
				r.Post("/join", roomHandler.Join)

				r.Route("/{roomID}", func(r chi.Router) {
					// {roomID} also accepts a join code on the bare GET
					r.Get("/", roomHandler.Get)

					r.Route("/items", func(r chi.Router) {
						r.Post("/", listHandler.Upsert)
						r.Get("/", listHandler.List)
						r.Delete("/{itemID}/{itemType}", listHandler.Remove)
					})

					r.Route("/notes", func(r chi.Router) {
						r.Post("/", noteHandler.Add)
						r.Get("/{itemID}/{itemType}", noteHandler.ListByItem)
					})

					r.Route("/ratings", func(r chi.Router) {
						r.Post("/", ratingHandler.Rate)
						r.Get("/{itemID}/{itemType}", ratingHandler.Get)
					})
					r.Get("/matches", ratingHandler.Matches)

					r.Route("/sessions", func(r chi.Router) {
						r.Post("/", sessionHandler.Schedule)
						r.Get("/", sessionHandler.List)
						r.Put("/{sessionID}/complete", sessionHandler.Complete)
						r.Delete("/{sessionID}", sessionHandler.Delete)
					})

					r.Get("/recommendations/{itemType}", discoveryHandler.Recommendations)
					r.Get("/spin-wheel", discoveryHandler.SpinWheel)
					r.Get("/stats", discoveryHandler.Stats)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/me/rooms", roomHandler.GetUserRooms)
			})
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
