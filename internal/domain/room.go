package domain

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	CreatedBy uuid.UUID `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

// RoomMember joins a user to a room. At most one row per (room, user) pair.
type RoomMember struct {
	RoomID   uuid.UUID `json:"roomId" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;primaryKey"`
	JoinedAt time.Time `json:"joinedAt"`
}
