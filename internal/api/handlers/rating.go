package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gilson1254/catalogo-de-filmes/internal/api/middleware"
	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
)

type RatingHandler struct {
	ratingService *service.RatingService
	hub           *websocket.Hub
}

func NewRatingHandler(ratingService *service.RatingService, hub *websocket.Hub) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		hub:           hub,
	}
}

type RateRequest struct {
	ItemID   int64  `json:"itemId"`
	ItemType string `json:"itemType"`
	Rating   int    `json:"rating"`
}

func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ItemID == 0 || req.ItemType == "" {
		http.Error(w, "Item ID and type are required", http.StatusBadRequest)
		return
	}

	rating, err := h.ratingService.Rate(r.Context(), service.RateInput{
		RoomID:   roomID,
		UserID:   userID,
		ItemID:   req.ItemID,
		ItemType: domain.MediaType(req.ItemType),
		Score:    req.Rating,
	})
	if err != nil {
		http.Error(w, "Failed to save rating", http.StatusInternalServerError)
		return
	}

	h.hub.Publish(roomID, websocket.EventRatingSaved, rating)
	writeJSON(w, rating)
}

func (h *RatingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	key := domain.ItemKey{
		RoomID:   roomID,
		UserID:   userID,
		ItemID:   itemID,
		ItemType: itemTypeParam(r),
	}

	rating, err := h.ratingService.Get(r.Context(), key)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, rating)
}

func (h *RatingHandler) Matches(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	matches, err := h.ratingService.Matches(r.Context(), roomID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"matches": matches})
}
