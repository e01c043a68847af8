package postgres

import (
	"context"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *ratingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetByKey(ctx context.Context, key domain.ItemKey) (*domain.Rating, error) {
	var rating domain.Rating
	err := r.db.WithContext(ctx).
		First(&rating, "room_id = ? AND user_id = ? AND item_id = ? AND item_type = ?",
			key.RoomID, key.UserID, key.ItemID, key.ItemType).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &rating, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*domain.Rating, error) {
	var ratings []*domain.Rating
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
