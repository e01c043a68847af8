package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/google/uuid"
)

type SessionService struct {
	sessionRepo repository.WatchSessionRepository
	userRepo    repository.UserRepository
	tmdb        *tmdb.Client
}

func NewSessionService(sessionRepo repository.WatchSessionRepository, userRepo repository.UserRepository, tmdbClient *tmdb.Client) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		tmdb:        tmdbClient,
	}
}

type ScheduleInput struct {
	RoomID       uuid.UUID
	UserID       uuid.UUID
	ItemID       int64
	ItemType     domain.MediaType
	ScheduledFor time.Time
	Notes        string
}

// Schedule creates a session. Overlapping times are not checked.
func (s *SessionService) Schedule(ctx context.Context, input ScheduleInput) (*domain.WatchSession, error) {
	session := &domain.WatchSession{
		ID:           uuid.New(),
		RoomID:       input.RoomID,
		UserID:       input.UserID,
		ItemID:       input.ItemID,
		ItemType:     input.ItemType,
		ScheduledFor: input.ScheduledFor,
		Notes:        input.Notes,
		Completed:    false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Complete(ctx context.Context, id uuid.UUID) (*domain.WatchSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	session.Completed = true
	session.CompletedAt = &now
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes the session unconditionally; an unknown id is a no-op.
func (s *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, id)
}

// SessionView is a session joined with its catalog detail and the organizer's
// username.
type SessionView struct {
	*domain.WatchSession
	Item     *tmdb.Detail `json:"item"`
	Username string       `json:"username"`
}

// ListRoom returns the room's sessions ascending by scheduled time. A session
// whose catalog lookup fails is dropped from the result rather than failing
// the whole request.
func (s *SessionService) ListRoom(ctx context.Context, roomID uuid.UUID) ([]*SessionView, error) {
	sessions, err := s.sessionRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	usernames := make(map[uuid.UUID]string)
	views := make([]*SessionView, 0, len(sessions))
	for _, session := range sessions {
		detail, err := s.tmdb.Details(ctx, session.ItemType, session.ItemID)
		if err != nil {
			log.Printf("ERROR [SessionService] failed to fetch session detail for %s %d: %v", session.ItemType, session.ItemID, err)
			continue
		}

		name, ok := usernames[session.UserID]
		if !ok {
			name = unknownUser
			if user, err := s.userRepo.GetByID(ctx, session.UserID); err == nil {
				name = user.Username
			}
			usernames[session.UserID] = name
		}

		views = append(views, &SessionView{
			WatchSession: session,
			Item:         detail,
			Username:     name,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].ScheduledFor.Before(views[j].ScheduledFor)
	})
	return views, nil
}
