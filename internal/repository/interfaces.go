package repository

import (
	"context"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/google/uuid"
)

// Implementations return domain.ErrNotFound (or a sentinel wrapping it) when a
// single-entity lookup misses, regardless of the backing store.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	GetByCode(ctx context.Context, code string) (*domain.Room, error)
	GetByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Room, error)
}

type RoomMemberRepository interface {
	Create(ctx context.Context, member *domain.RoomMember) error
	Exists(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
}

type ListEntryRepository interface {
	GetByKey(ctx context.Context, key domain.ItemKey) (*domain.ListEntry, error)
	Create(ctx context.Context, entry *domain.ListEntry) error
	Update(ctx context.Context, entry *domain.ListEntry) error
	// Delete removes the entry for the key; deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key domain.ItemKey) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.ListEntry, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	ListByItem(ctx context.Context, roomID uuid.UUID, itemID int64, itemType domain.MediaType) ([]*domain.Note, error)
}

type RatingRepository interface {
	GetByKey(ctx context.Context, key domain.ItemKey) (*domain.Rating, error)
	Create(ctx context.Context, rating *domain.Rating) error
	Update(ctx context.Context, rating *domain.Rating) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.Rating, error)
}

type WatchSessionRepository interface {
	Create(ctx context.Context, session *domain.WatchSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WatchSession, error)
	Update(ctx context.Context, session *domain.WatchSession) error
	// Delete removes the session; deleting a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.WatchSession, error)
}

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Room         RoomRepository
	RoomMember   RoomMemberRepository
	ListEntry    ListEntryRepository
	Note         NoteRepository
	Rating       RatingRepository
	WatchSession WatchSessionRepository
}
