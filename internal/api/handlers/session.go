package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/api/middleware"
	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionService *service.SessionService
	hub            *websocket.Hub
}

func NewSessionHandler(sessionService *service.SessionService, hub *websocket.Hub) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		hub:            hub,
	}
}

type ScheduleSessionRequest struct {
	ItemID       int64     `json:"itemId"`
	ItemType     string    `json:"itemType"`
	ScheduledFor time.Time `json:"scheduledFor"`
	Notes        string    `json:"notes"`
}

func (h *SessionHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	var req ScheduleSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ItemID == 0 || req.ItemType == "" || req.ScheduledFor.IsZero() {
		http.Error(w, "Item ID, type and scheduled time are required", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.Schedule(r.Context(), service.ScheduleInput{
		RoomID:       roomID,
		UserID:       userID,
		ItemID:       req.ItemID,
		ItemType:     domain.MediaType(req.ItemType),
		ScheduledFor: req.ScheduledFor.UTC(),
		Notes:        req.Notes,
	})
	if err != nil {
		http.Error(w, "Failed to schedule session", http.StatusInternalServerError)
		return
	}

	h.hub.Publish(roomID, websocket.EventSessionScheduled, session)
	writeJSON(w, session)
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}

	sessions, err := h.sessionService.ListRoom(r.Context(), roomID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, sessions)
}

func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.Complete(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.hub.Publish(roomID, websocket.EventSessionCompleted, session)
	writeJSON(w, session)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID, ok := roomIDParam(w, r)
	if !ok {
		return
	}
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	// Deleting an unknown session still reports success
	if err := h.sessionService.Delete(r.Context(), sessionID); err != nil {
		http.Error(w, "Failed to delete session", http.StatusInternalServerError)
		return
	}

	h.hub.Publish(roomID, websocket.EventSessionDeleted, map[string]string{"sessionId": sessionID.String()})
	writeJSON(w, map[string]bool{"success": true})
}
