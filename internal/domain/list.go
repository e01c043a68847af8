package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaType mirrors the metadata provider's item kinds.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

type WatchStatus string

const (
	StatusWatched     WatchStatus = "watched"
	StatusWantToWatch WatchStatus = "want_to_watch"
)

// ItemKey is the composite key shared by list entries and ratings.
type ItemKey struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	ItemID   int64
	ItemType MediaType
}

// ListEntry is one user's watch status for an item inside a room. The
// (room, user, item, type) key has at most one live entry; writes for an
// existing key overwrite status and the updated timestamp. Status is stored
// as given, without validating it against the known values.
type ListEntry struct {
	ID       uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	RoomID   uuid.UUID   `json:"roomId" gorm:"type:uuid;not null;uniqueIndex:idx_list_key"`
	UserID   uuid.UUID   `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_list_key"`
	ItemID   int64       `json:"itemId" gorm:"not null;uniqueIndex:idx_list_key"`
	ItemType MediaType   `json:"itemType" gorm:"not null;uniqueIndex:idx_list_key"`
	Status   WatchStatus `json:"status" gorm:"not null"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *ListEntry) Key() ItemKey {
	return ItemKey{RoomID: e.RoomID, UserID: e.UserID, ItemID: e.ItemID, ItemType: e.ItemType}
}
