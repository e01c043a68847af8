package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gilson1254/catalogo-de-filmes/internal/api/middleware"
	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
)

type ListHandler struct {
	listService *service.ListService
	hub         *websocket.Hub
}

func NewListHandler(listService *service.ListService, hub *websocket.Hub) *ListHandler {
	return &ListHandler{
		listService: listService,
		hub:         hub,
	}
}

type UpsertEntryRequest struct {
	ItemID   int64  `json:"itemId"`
	ItemType string `json:"itemType"`
	Status   string `json:"status"`
}

func (h *ListHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	var req UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ItemID == 0 || req.ItemType == "" {
		http.Error(w, "Item ID and type are required", http.StatusBadRequest)
		return
	}

	entry, err := h.listService.Upsert(r.Context(), service.UpsertEntryInput{
		RoomID:   roomID,
		UserID:   userID,
		ItemID:   req.ItemID,
		ItemType: domain.MediaType(req.ItemType),
		Status:   domain.WatchStatus(req.Status),
	})
	if err != nil {
		http.Error(w, "Failed to save list entry", http.StatusInternalServerError)
		return
	}

	h.hub.Publish(roomID, websocket.EventListUpdated, entry)
	writeJSON(w, entry)
}

func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.listService.ListRoom(r.Context(), roomID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, entries)
}

func (h *ListHandler) Remove(w http.ResponseWriter, r *http.Request) {
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

	// Removing an absent entry still reports success
	if err := h.listService.Remove(r.Context(), key); err != nil {
		http.Error(w, "Failed to remove list entry", http.StatusInternalServerError)
		return
	}

	h.hub.Publish(roomID, websocket.EventListRemoved, key)
	writeJSON(w, map[string]bool{"success": true})
}
