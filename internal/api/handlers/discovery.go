package handlers

import (
	"errors"
	"net/http"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/go-chi/chi/v5"
)

type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
}

func NewDiscoveryHandler(discoveryService *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

func (h *DiscoveryHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}
	mediaType := domain.MediaType(chi.URLParam(r, "itemType"))

	page, err := h.discoveryService.Recommendations(r.Context(), roomID, mediaType)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyWatchlist) {
			http.Error(w, "Want-to-watch list is empty", http.StatusNotFound)
			return
		}
		upstreamError(w, err, "Failed to fetch recommendations")
		return
	}

	writeJSON(w, page)
}

func (h *DiscoveryHandler) SpinWheel(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}
	mediaType := domain.MediaType(r.URL.Query().Get("type"))

	result, err := h.discoveryService.SpinWheel(r.Context(), roomID, mediaType)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyWatchlist) {
			http.Error(w, "Want-to-watch list is empty", http.StatusNotFound)
			return
		}
		upstreamError(w, err, "Failed to spin the wheel")
		return
	}

	writeJSON(w, result)
}

func (h *DiscoveryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	stats, err := h.discoveryService.Stats(r.Context(), roomID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats)
}
