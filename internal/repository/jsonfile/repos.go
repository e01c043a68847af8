package jsonfile

import (
	"context"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Users = append(s.doc.Users, *user)
	return s.save()
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Users {
		if s.doc.Users[i].ID == id {
			user := s.doc.Users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Users {
		if s.doc.Users[i].Username == username {
			user := s.doc.Users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

type sessionRepository struct {
	store *Store
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.UserSessions = append(s.doc.UserSessions, *session)
	return s.save()
}

func (r *sessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.UserSessions[:0]
	for _, sess := range s.doc.UserSessions {
		if sess.UserID != userID {
			kept = append(kept, sess)
		}
	}
	s.doc.UserSessions = kept
	return s.save()
}

type roomRepository struct {
	store *Store
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *room
	stored.Creator = nil
	s.doc.Rooms = append(s.doc.Rooms, stored)
	return s.save()
}

func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Rooms {
		if s.doc.Rooms[i].ID == id {
			room := s.doc.Rooms[i]
			return &room, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *roomRepository) GetByCode(ctx context.Context, code string) (*domain.Room, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Rooms {
		if s.doc.Rooms[i].Code == code {
			room := s.doc.Rooms[i]
			return &room, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *roomRepository) GetByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Room, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	memberOf := make(map[uuid.UUID]bool)
	for _, m := range s.doc.RoomMembers {
		if m.UserID == userID {
			memberOf[m.RoomID] = true
		}
	}
	var rooms []*domain.Room
	for i := range s.doc.Rooms {
		if memberOf[s.doc.Rooms[i].ID] {
			room := s.doc.Rooms[i]
			rooms = append(rooms, &room)
		}
	}
	return rooms, nil
}

type roomMemberRepository struct {
	store *Store
}

func (r *roomMemberRepository) Create(ctx context.Context, member *domain.RoomMember) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.RoomMembers = append(s.doc.RoomMembers, *member)
	return s.save()
}

func (r *roomMemberRepository) Exists(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.doc.RoomMembers {
		if m.RoomID == roomID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type listEntryRepository struct {
	store *Store
}

func (r *listEntryRepository) GetByKey(ctx context.Context, key domain.ItemKey) (*domain.ListEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Lists {
		if s.doc.Lists[i].Key() == key {
			entry := s.doc.Lists[i]
			return &entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *listEntryRepository) Create(ctx context.Context, entry *domain.ListEntry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Lists = append(s.doc.Lists, *entry)
	return s.save()
}

func (r *listEntryRepository) Update(ctx context.Context, entry *domain.ListEntry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Lists {
		if s.doc.Lists[i].ID == entry.ID {
			s.doc.Lists[i] = *entry
			return s.save()
		}
	}
	return domain.ErrNotFound
}

func (r *listEntryRepository) Delete(ctx context.Context, key domain.ItemKey) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.Lists[:0]
	for _, entry := range s.doc.Lists {
		if entry.Key() != key {
			kept = append(kept, entry)
		}
	}
	s.doc.Lists = kept
	return s.save()
}

func (r *listEntryRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.ListEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []*domain.ListEntry
	for i := range s.doc.Lists {
		if s.doc.Lists[i].RoomID == roomID {
			entry := s.doc.Lists[i]
			entries = append(entries, &entry)
		}
	}
	return entries, nil
}

type noteRepository struct {
	store *Store
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Notes = append(s.doc.Notes, *note)
	return s.save()
}

func (r *noteRepository) ListByItem(ctx context.Context, roomID uuid.UUID, itemID int64, itemType domain.MediaType) ([]*domain.Note, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var notes []*domain.Note
	for i := range s.doc.Notes {
		n := s.doc.Notes[i]
		if n.RoomID == roomID && n.ItemID == itemID && n.ItemType == itemType {
			notes = append(notes, &n)
		}
	}
	return notes, nil
}

type ratingRepository struct {
	store *Store
}

func (r *ratingRepository) GetByKey(ctx context.Context, key domain.ItemKey) (*domain.Rating, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Ratings {
		if s.doc.Ratings[i].Key() == key {
			rating := s.doc.Ratings[i]
			return &rating, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Ratings = append(s.doc.Ratings, *rating)
	return s.save()
}

func (r *ratingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Ratings {
		if s.doc.Ratings[i].ID == rating.ID {
			s.doc.Ratings[i] = *rating
			return s.save()
		}
	}
	return domain.ErrNotFound
}

func (r *ratingRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.Rating, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var ratings []*domain.Rating
	for i := range s.doc.Ratings {
		if s.doc.Ratings[i].RoomID == roomID {
			rating := s.doc.Ratings[i]
			ratings = append(ratings, &rating)
		}
	}
	return ratings, nil
}

type watchSessionRepository struct {
	store *Store
}

func (r *watchSessionRepository) Create(ctx context.Context, session *domain.WatchSession) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Sessions = append(s.doc.Sessions, *session)
	return s.save()
}

func (r *watchSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WatchSession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].ID == id {
			session := s.doc.Sessions[i]
			return &session, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *watchSessionRepository) Update(ctx context.Context, session *domain.WatchSession) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].ID == session.ID {
			s.doc.Sessions[i] = *session
			return s.save()
		}
	}
	return domain.ErrNotFound
}

func (r *watchSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.doc.Sessions[:0]
	for _, session := range s.doc.Sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	s.doc.Sessions = kept
	return s.save()
}

func (r *watchSessionRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.WatchSession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var sessions []*domain.WatchSession
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].RoomID == roomID {
			session := s.doc.Sessions[i]
			sessions = append(sessions, &session)
		}
	}
	return sessions, nil
}
