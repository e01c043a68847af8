package domain

import (
	"time"

	"github.com/google/uuid"
)

// WatchSession is a scheduled viewing of an item inside a room. No conflict
// detection is done for overlapping times.
type WatchSession struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	RoomID       uuid.UUID  `json:"roomId" gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID  `json:"userId" gorm:"type:uuid;not null"`
	ItemID       int64      `json:"itemId" gorm:"not null"`
	ItemType     MediaType  `json:"itemType" gorm:"not null"`
	ScheduledFor time.Time  `json:"scheduledFor" gorm:"not null"`
	Notes        string     `json:"notes"`
	Completed    bool       `json:"completed" gorm:"not null;default:false"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt"`
}
