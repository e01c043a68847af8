package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is free text attached to an item inside a room. Append-only: there is
// no edit or delete path, and any number of notes may exist for the same item.
type Note struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RoomID   uuid.UUID `json:"roomId" gorm:"type:uuid;not null;index"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	ItemID   int64     `json:"itemId" gorm:"not null"`
	ItemType MediaType `json:"itemType" gorm:"not null"`
	Text     string    `json:"note" gorm:"not null"`

	CreatedAt time.Time `json:"createdAt"`
}
