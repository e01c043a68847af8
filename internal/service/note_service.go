package service

import (
	"context"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/google/uuid"
)

type NoteService struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
}

func NewNoteService(noteRepo repository.NoteRepository, userRepo repository.UserRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

type AddNoteInput struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	ItemID   int64
	ItemType domain.MediaType
	Text     string
}

func (s *NoteService) Add(ctx context.Context, input AddNoteInput) (*domain.Note, error) {
	note := &domain.Note{
		ID:        uuid.New(),
		RoomID:    input.RoomID,
		UserID:    input.UserID,
		ItemID:    input.ItemID,
		ItemType:  input.ItemType,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// ItemNote is a note annotated with its author's username.
type ItemNote struct {
	*domain.Note
	Username string `json:"username"`
}

// ListByItem returns the item's notes in insertion order.
func (s *NoteService) ListByItem(ctx context.Context, roomID uuid.UUID, itemID int64, itemType domain.MediaType) ([]*ItemNote, error) {
	notes, err := s.noteRepo.ListByItem(ctx, roomID, itemID, itemType)
	if err != nil {
		return nil, err
	}

	usernames := make(map[uuid.UUID]string)
	result := make([]*ItemNote, 0, len(notes))
	for _, note := range notes {
		name, ok := usernames[note.UserID]
		if !ok {
			name = unknownUser
			if user, err := s.userRepo.GetByID(ctx, note.UserID); err == nil {
				name = user.Username
			}
			usernames[note.UserID] = name
		}
		result = append(result, &ItemNote{Note: note, Username: name})
	}
	return result, nil
}
