package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gilson1254/catalogo-de-filmes/internal/api/middleware"
	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
)

type NoteHandler struct {
	noteService *service.NoteService
	hub         *websocket.Hub
}

func NewNoteHandler(noteService *service.NoteService, hub *websocket.Hub) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		hub:         hub,
	}
}

type AddNoteRequest struct {
	ItemID   int64  `json:"itemId"`
	ItemType string `json:"itemType"`
	Note     string `json:"note"`
}

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ItemID == 0 || req.ItemType == "" || req.Note == "" {
		http.Error(w, "Item ID, type and note are required", http.StatusBadRequest)
		return
	}

	note, err := h.noteService.Add(r.Context(), service.AddNoteInput{
		RoomID:   roomID,
		UserID:   userID,
		ItemID:   req.ItemID,
		ItemType: domain.MediaType(req.ItemType),
		Text:     req.Note,
	})
	if err != nil {
		http.Error(w, "Failed to add note", http.StatusInternalServerError)
		return
	}

	h.hub.Publish(roomID, websocket.EventNoteAdded, note)
	writeJSON(w, note)
}

func (h *NoteHandler) ListByItem(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}
	itemID, ok := itemIDParam(w, r)
	if !ok {
		return
	}

	notes, err := h.noteService.ListByItem(r.Context(), roomID, itemID, itemTypeParam(r))
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, notes)
}
