package service

import (
	"context"
	"errors"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/google/uuid"
)

// unknownUser labels entries whose author can no longer be resolved.
const unknownUser = "Unknown"

type ListService struct {
	listRepo repository.ListEntryRepository
	userRepo repository.UserRepository
}

func NewListService(listRepo repository.ListEntryRepository, userRepo repository.UserRepository) *ListService {
	return &ListService{
		listRepo: listRepo,
		userRepo: userRepo,
	}
}

type UpsertEntryInput struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	ItemID   int64
	ItemType domain.MediaType
	Status   domain.WatchStatus
}

// Upsert writes the entry for the (room, user, item, type) key. An existing
// entry has its status and updated timestamp overwritten; a new one is
// inserted with both timestamps equal. The status is stored as given.
func (s *ListService) Upsert(ctx context.Context, input UpsertEntryInput) (*domain.ListEntry, error) {
	key := domain.ItemKey{RoomID: input.RoomID, UserID: input.UserID, ItemID: input.ItemID, ItemType: input.ItemType}

	existing, err := s.listRepo.GetByKey(ctx, key)
	if err == nil {
		existing.Status = input.Status
		existing.UpdatedAt = time.Now().UTC()
		if err := s.listRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.ListEntry{
		ID:        uuid.New(),
		RoomID:    input.RoomID,
		UserID:    input.UserID,
		ItemID:    input.ItemID,
		ItemType:  input.ItemType,
		Status:    input.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.listRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove deletes the entry for the key. Removing an absent entry succeeds.
func (s *ListService) Remove(ctx context.Context, key domain.ItemKey) error {
	return s.listRepo.Delete(ctx, key)
}

// RoomEntry is a list entry annotated with its owner's username.
type RoomEntry struct {
	*domain.ListEntry
	Username string `json:"username"`
}

func (s *ListService) ListRoom(ctx context.Context, roomID uuid.UUID) ([]*RoomEntry, error) {
	entries, err := s.listRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	usernames := make(map[uuid.UUID]string)
	result := make([]*RoomEntry, 0, len(entries))
	for _, entry := range entries {
		name, ok := usernames[entry.UserID]
		if !ok {
			name = unknownUser
			if user, err := s.userRepo.GetByID(ctx, entry.UserID); err == nil {
				name = user.Username
			}
			usernames[entry.UserID] = name
		}
		result = append(result, &RoomEntry{ListEntry: entry, Username: name})
	}
	return result, nil
}
