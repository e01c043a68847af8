package postgres

import (
	"context"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type watchSessionRepository struct {
	db *gorm.DB
}

func NewWatchSessionRepository(db *gorm.DB) *watchSessionRepository {
	return &watchSessionRepository{db: db}
}

func (r *watchSessionRepository) Create(ctx context.Context, session *domain.WatchSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *watchSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WatchSession, error) {
	var session domain.WatchSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &session, nil
}

func (r *watchSessionRepository) Update(ctx context.Context, session *domain.WatchSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *watchSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.WatchSession{}, "id = ?", id).Error
}

func (r *watchSessionRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.WatchSession, error) {
	var sessions []*domain.WatchSession
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("scheduled_for ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
