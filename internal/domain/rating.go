package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchThreshold is the minimum score every rater must give an item for it to
// count as a room match.
const MatchThreshold = 4

// Rating is one user's score for an item inside a room. Upsert semantics on
// the (room, user, item, type) key, same as ListEntry. The score is expected
// to be 1-5 but is stored unvalidated.
type Rating struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RoomID   uuid.UUID `json:"roomId" gorm:"type:uuid;not null;uniqueIndex:idx_rating_key"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_rating_key"`
	ItemID   int64     `json:"itemId" gorm:"not null;uniqueIndex:idx_rating_key"`
	ItemType MediaType `json:"itemType" gorm:"not null;uniqueIndex:idx_rating_key"`
	Score    int       `json:"rating" gorm:"not null"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *Rating) Key() ItemKey {
	return ItemKey{RoomID: r.RoomID, UserID: r.UserID, ItemID: r.ItemID, ItemType: r.ItemType}
}
