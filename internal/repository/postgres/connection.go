package postgres

import (
	"errors"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.Room{},
		&domain.RoomMember{},
		&domain.ListEntry{},
		&domain.Note{},
		&domain.Rating{},
		&domain.WatchSession{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Room:         NewRoomRepository(db),
		RoomMember:   NewRoomMemberRepository(db),
		ListEntry:    NewListEntryRepository(db),
		Note:         NewNoteRepository(db),
		Rating:       NewRatingRepository(db),
		WatchSession: NewWatchSessionRepository(db),
	}
}

// notFound maps gorm's sentinel onto the storage-agnostic one the services
// check for.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
