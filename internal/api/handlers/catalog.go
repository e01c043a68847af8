package handlers

import (
	"net/http"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
)

// CatalogHandler proxies the metadata provider: search, popular, discover,
// detail, watch providers and the genre vocabulary.
type CatalogHandler struct {
	tmdb *tmdb.Client
}

func NewCatalogHandler(tmdbClient *tmdb.Client) *CatalogHandler {
	return &CatalogHandler{tmdb: tmdbClient}
}

func (h *CatalogHandler) searchHandler(mediaType domain.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "Query parameter 'q' is required", http.StatusBadRequest)
			return
		}

		page, err := h.tmdb.Search(r.Context(), mediaType, query)
		if err != nil {
			upstreamError(w, err, "Failed to search catalog")
			return
		}
		writeJSON(w, page)
	}
}

func (h *CatalogHandler) popularHandler(mediaType domain.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.tmdb.Popular(r.Context(), mediaType)
		if err != nil {
			upstreamError(w, err, "Failed to fetch popular items")
			return
		}
		writeJSON(w, page)
	}
}

func (h *CatalogHandler) discoverHandler(mediaType domain.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := tmdb.DiscoverFilter{
			Genre: r.URL.Query().Get("genre"),
			Year:  r.URL.Query().Get("year"),
		}

		page, err := h.tmdb.Discover(r.Context(), mediaType, filter)
		if err != nil {
			upstreamError(w, err, "Failed to discover items")
			return
		}
		writeJSON(w, page)
	}
}

func (h *CatalogHandler) detailHandler(mediaType domain.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := itemIDParam(w, r)
		if !ok {
			return
		}

		detail, err := h.tmdb.Details(r.Context(), mediaType, itemID)
		if err != nil {
			upstreamError(w, err, "Failed to fetch item details")
			return
		}
		writeJSON(w, detail)
	}
}

func (h *CatalogHandler) providersHandler(mediaType domain.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := itemIDParam(w, r)
		if !ok {
			return
		}

		// Provider lookup failures degrade to an empty result
		providers, err := h.tmdb.WatchProviders(r.Context(), mediaType, itemID)
		if err != nil {
			writeJSON(w, tmdb.WatchProviders{Results: map[string]tmdb.CountryProviders{}})
			return
		}
		writeJSON(w, providers)
	}
}

func (h *CatalogHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	h.searchHandler(domain.MediaTypeMovie)(w, r)
}

func (h *CatalogHandler) SearchTV(w http.ResponseWriter, r *http.Request) {
	h.searchHandler(domain.MediaTypeTV)(w, r)
}

func (h *CatalogHandler) PopularMovies(w http.ResponseWriter, r *http.Request) {
	h.popularHandler(domain.MediaTypeMovie)(w, r)
}

func (h *CatalogHandler) PopularTV(w http.ResponseWriter, r *http.Request) {
	h.popularHandler(domain.MediaTypeTV)(w, r)
}

func (h *CatalogHandler) DiscoverMovies(w http.ResponseWriter, r *http.Request) {
	h.discoverHandler(domain.MediaTypeMovie)(w, r)
}

func (h *CatalogHandler) DiscoverTV(w http.ResponseWriter, r *http.Request) {
	h.discoverHandler(domain.MediaTypeTV)(w, r)
}

func (h *CatalogHandler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	h.detailHandler(domain.MediaTypeMovie)(w, r)
}

func (h *CatalogHandler) TVDetails(w http.ResponseWriter, r *http.Request) {
	h.detailHandler(domain.MediaTypeTV)(w, r)
}

func (h *CatalogHandler) MovieProviders(w http.ResponseWriter, r *http.Request) {
	h.providersHandler(domain.MediaTypeMovie)(w, r)
}

func (h *CatalogHandler) TVProviders(w http.ResponseWriter, r *http.Request) {
	h.providersHandler(domain.MediaTypeTV)(w, r)
}

func (h *CatalogHandler) MoviesByActor(w http.ResponseWriter, r *http.Request) {
	actor := r.URL.Query().Get("actor")
	if actor == "" {
		http.Error(w, "Query parameter 'actor' is required", http.StatusBadRequest)
		return
	}

	page, err := h.tmdb.MoviesByActor(r.Context(), actor)
	if err != nil {
		upstreamError(w, err, "Failed to search by actor")
		return
	}
	writeJSON(w, page)
}

func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.tmdb.Genres(r.Context())
	if err != nil {
		upstreamError(w, err, "Failed to fetch genres")
		return
	}
	writeJSON(w, genres)
}
