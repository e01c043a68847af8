package websocket

import "github.com/google/uuid"

// Event types pushed to room subscribers when a ledger mutates.
const (
	EventListUpdated      = "list_updated"
	EventListRemoved      = "list_removed"
	EventNoteAdded        = "note_added"
	EventRatingSaved      = "rating_saved"
	EventSessionScheduled = "session_scheduled"
	EventSessionCompleted = "session_completed"
	EventSessionDeleted   = "session_deleted"
)

type Event struct {
	Type    string    `json:"type"`
	RoomID  uuid.UUID `json:"roomId"`
	Payload any       `json:"payload,omitempty"`
}
