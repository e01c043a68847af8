package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/google/uuid"
)

type RatingService struct {
	ratingRepo repository.RatingRepository
	tmdb       *tmdb.Client
}

func NewRatingService(ratingRepo repository.RatingRepository, tmdbClient *tmdb.Client) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		tmdb:       tmdbClient,
	}
}

type RateInput struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	ItemID   int64
	ItemType domain.MediaType
	Score    int
}

// Rate upserts the user's score for the item. The score is stored as given,
// without range validation.
func (s *RatingService) Rate(ctx context.Context, input RateInput) (*domain.Rating, error) {
	key := domain.ItemKey{RoomID: input.RoomID, UserID: input.UserID, ItemID: input.ItemID, ItemType: input.ItemType}

	existing, err := s.ratingRepo.GetByKey(ctx, key)
	if err == nil {
		existing.Score = input.Score
		if err := s.ratingRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	rating := &domain.Rating{
		ID:        uuid.New(),
		RoomID:    input.RoomID,
		UserID:    input.UserID,
		ItemID:    input.ItemID,
		ItemType:  input.ItemType,
		Score:     input.Score,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// Get returns the stored rating, or a zero-score rating for the key when none
// exists. Absence is never an error.
func (s *RatingService) Get(ctx context.Context, key domain.ItemKey) (*domain.Rating, error) {
	rating, err := s.ratingRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Rating{
				RoomID:   key.RoomID,
				UserID:   key.UserID,
				ItemID:   key.ItemID,
				ItemType: key.ItemType,
				Score:    0,
			}, nil
		}
		return nil, err
	}
	return rating, nil
}

type matchKey struct {
	ItemID   int64
	ItemType domain.MediaType
}

// Match is a room match: an item every rater scored at or above the
// threshold, joined with its catalog detail.
type Match struct {
	ItemID   int64            `json:"itemId"`
	ItemType domain.MediaType `json:"itemType"`
	Ratings  []*domain.Rating `json:"ratings"`
	Item     *tmdb.Detail     `json:"item"`
}

// Matches groups the room's ratings by item. An item qualifies only when it
// has at least two ratings and every one of them is >= the threshold. Results
// follow the first-seen order of item keys; items whose catalog lookup fails
// are dropped rather than failing the batch.
func (s *RatingService) Matches(ctx context.Context, roomID uuid.UUID) ([]*Match, error) {
	ratings, err := s.ratingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	var order []matchKey
	grouped := make(map[matchKey][]*domain.Rating)
	for _, rating := range ratings {
		key := matchKey{ItemID: rating.ItemID, ItemType: rating.ItemType}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], rating)
	}

	matches := make([]*Match, 0)
	for _, key := range order {
		group := grouped[key]
		if len(group) < 2 {
			continue
		}
		allLiked := true
		for _, rating := range group {
			if rating.Score < domain.MatchThreshold {
				allLiked = false
				break
			}
		}
		if !allLiked {
			continue
		}

		detail, err := s.tmdb.Details(ctx, key.ItemType, key.ItemID)
		if err != nil {
			log.Printf("ERROR [RatingService] failed to fetch match detail for %s %d: %v", key.ItemType, key.ItemID, err)
			continue
		}
		matches = append(matches, &Match{
			ItemID:   key.ItemID,
			ItemType: key.ItemType,
			Ratings:  group,
			Item:     detail,
		})
	}
	return matches, nil
}
