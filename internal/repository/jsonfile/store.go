// Package jsonfile persists the whole application state as a single JSON
// document of named collections. Every mutation rewrites the document; loads
// default missing collections to empty so older files keep working.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
)

type document struct {
	Users        []domain.User         `json:"users"`
	Rooms        []domain.Room         `json:"rooms"`
	RoomMembers  []domain.RoomMember   `json:"room_members"`
	Lists        []domain.ListEntry    `json:"lists"`
	Notes        []domain.Note         `json:"notes"`
	Ratings      []domain.Rating       `json:"ratings"`
	Sessions     []domain.WatchSession `json:"sessions"`
	UserSessions []domain.UserSession  `json:"user_sessions"`
}

// Store holds the document in memory and mirrors every mutation to disk. A
// single mutex serializes access; there is no finer-grained locking or
// transaction boundary.
type Store struct {
	path string
	mu   sync.Mutex
	doc  document
}

func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("failed to initialize store: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to decode store: %w", err)
	}
	return s, nil
}

// save must be called with the mutex held (or before the store is shared).
func (s *Store) save() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func NewRepositories(s *Store) *repository.Repositories {
	return &repository.Repositories{
		User:         &userRepository{store: s},
		Session:      &sessionRepository{store: s},
		Room:         &roomRepository{store: s},
		RoomMember:   &roomMemberRepository{store: s},
		ListEntry:    &listEntryRepository{store: s},
		Note:         &noteRepository{store: s},
		Rating:       &ratingRepository{store: s},
		WatchSession: &watchSessionRepository{store: s},
	}
}
