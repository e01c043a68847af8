package service_test

import (
	"context"
	"testing"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/service"
	"github.com/gilson1254/catalogo-de-filmes/internal/testutil"
	"github.com/gilson1254/catalogo-de-filmes/internal/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatingService(t *testing.T) (*service.RatingService, *testutil.FakeTMDB, *ratingFixture) {
	t.Helper()

	fake := testutil.NewFakeTMDB(t)
	cfg := testutil.TestConfig()
	cfg.TMDBBaseURL = fake.URL()

	repos := testutil.NewTestRepositories(t)
	ratingService := service.NewRatingService(repos.Rating, tmdb.NewClient(cfg))

	alice, _ := testutil.NewUserBuilder().WithUsername("alice").Build(t, repos)
	bob, _ := testutil.NewUserBuilder().WithUsername("bob").Build(t, repos)
	room := testutil.SeedRoom(t, repos, alice, "Sala do casal")

	return ratingService, fake, &ratingFixture{room: room, alice: alice, bob: bob}
}

type ratingFixture struct {
	room  *domain.Room
	alice *domain.User
	bob   *domain.User
}

func TestRatingService_Rate(t *testing.T) {
	ctx := context.Background()
	svc, _, fx := newRatingService(t)

	input := service.RateInput{
		RoomID:   fx.room.ID,
		UserID:   fx.alice.ID,
		ItemID:   603,
		ItemType: domain.MediaTypeMovie,
		Score:    3,
	}

	created, err := svc.Rate(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 3, created.Score)

	// Rating the same key again overwrites the score
	input.Score = 5
	updated, err := svc.Rate(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 5, updated.Score)
}

func TestRatingService_Get(t *testing.T) {
	ctx := context.Background()
	svc, _, fx := newRatingService(t)

	key := domain.ItemKey{RoomID: fx.room.ID, UserID: fx.alice.ID, ItemID: 603, ItemType: domain.MediaTypeMovie}

	// Absent rating reads back as score zero, not an error
	rating, err := svc.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 0, rating.Score)

	_, err = svc.Rate(ctx, service.RateInput{
		RoomID: key.RoomID, UserID: key.UserID, ItemID: key.ItemID, ItemType: key.ItemType, Score: 4,
	})
	require.NoError(t, err)

	rating, err = svc.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Score)
}

func TestRatingService_Matches(t *testing.T) {
	tests := []struct {
		name        string
		aliceScore  int
		bobScore    int
		wantMatches int
	}{
		{name: "both at threshold", aliceScore: 4, bobScore: 4, wantMatches: 1},
		{name: "both above threshold", aliceScore: 5, bobScore: 4, wantMatches: 1},
		{name: "one below threshold", aliceScore: 5, bobScore: 3, wantMatches: 0},
		{name: "single rater never matches", aliceScore: 5, bobScore: 0, wantMatches: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, fake, fx := newRatingService(t)
			fake.AddMovie(603, "Matrix", tmdb.Genre{ID: 878, Name: "Ficção científica"})

			_, err := svc.Rate(ctx, service.RateInput{
				RoomID: fx.room.ID, UserID: fx.alice.ID, ItemID: 603,
				ItemType: domain.MediaTypeMovie, Score: tt.aliceScore,
			})
			require.NoError(t, err)

			if tt.bobScore > 0 {
				_, err = svc.Rate(ctx, service.RateInput{
					RoomID: fx.room.ID, UserID: fx.bob.ID, ItemID: 603,
					ItemType: domain.MediaTypeMovie, Score: tt.bobScore,
				})
				require.NoError(t, err)
			}

			matches, err := svc.Matches(ctx, fx.room.ID)
			require.NoError(t, err)
			require.Len(t, matches, tt.wantMatches)

			if tt.wantMatches == 1 {
				match := matches[0]
				assert.Equal(t, int64(603), match.ItemID)
				assert.Equal(t, "Matrix", match.Item.DisplayTitle())
				assert.Len(t, match.Ratings, 2)
			}
		})
	}
}

func TestRatingService_MatchesDropsFailedLookups(t *testing.T) {
	ctx := context.Background()
	svc, fake, fx := newRatingService(t)

	// 603 resolves, 999 does not; only the resolvable match survives
	fake.AddMovie(603, "Matrix")

	for _, item := range []int64{603, 999} {
		for _, user := range []*domain.User{fx.alice, fx.bob} {
			_, err := svc.Rate(ctx, service.RateInput{
				RoomID: fx.room.ID, UserID: user.ID, ItemID: item,
				ItemType: domain.MediaTypeMovie, Score: 5,
			})
			require.NoError(t, err)
		}
	}

	matches, err := svc.Matches(ctx, fx.room.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(603), matches[0].ItemID)
}
