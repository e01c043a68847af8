package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// upstreamError maps provider failures to 502 and everything else to 500.
func upstreamError(w http.ResponseWriter, err error, message string) {
	var statusErr *tmdb.StatusError
	if errors.As(err, &statusErr) {
		http.Error(w, message, http.StatusBadGateway)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func roomIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
	if err != nil {
		http.Error(w, "Invalid room ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return roomID, true
}

func itemIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return 0, false
	}
	return itemID, true
}

func itemTypeParam(r *http.Request) domain.MediaType {
	return domain.MediaType(chi.URLParam(r, "itemType"))
}
