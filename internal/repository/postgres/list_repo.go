package postgres

import (
	"context"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type listEntryRepository struct {
	db *gorm.DB
}

func NewListEntryRepository(db *gorm.DB) *listEntryRepository {
	return &listEntryRepository{db: db}
}

func (r *listEntryRepository) GetByKey(ctx context.Context, key domain.ItemKey) (*domain.ListEntry, error) {
	var entry domain.ListEntry
	err := r.db.WithContext(ctx).
		First(&entry, "room_id = ? AND user_id = ? AND item_id = ? AND item_type = ?",
			key.RoomID, key.UserID, key.ItemID, key.ItemType).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &entry, nil
}

func (r *listEntryRepository) Create(ctx context.Context, entry *domain.ListEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *listEntryRepository) Update(ctx context.Context, entry *domain.ListEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *listEntryRepository) Delete(ctx context.Context, key domain.ItemKey) error {
	return r.db.WithContext(ctx).
		Delete(&domain.ListEntry{}, "room_id = ? AND user_id = ? AND item_id = ? AND item_type = ?",
			key.RoomID, key.UserID, key.ItemID, key.ItemType).Error
}

func (r *listEntryRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.ListEntry, error) {
	var entries []*domain.ListEntry
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
