package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository/jsonfile"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InitializesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")

	_, err := jsonfile.Open(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"users"`)
	assert.Contains(t, string(data), `"rooms"`)
}

func TestOpen_DefaultsMissingCollections(t *testing.T) {
	// An older file that predates some collections still loads
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users": []}`), 0o644))

	store, err := jsonfile.Open(path)
	require.NoError(t, err)

	repos := jsonfile.NewRepositories(store)
	rooms, err := repos.Room.GetByMember(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestOpen_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := jsonfile.Open(path)
	assert.Error(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database.json")

	store, err := jsonfile.Open(path)
	require.NoError(t, err)
	repos := jsonfile.NewRepositories(store)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "maria",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repos.User.Create(ctx, user))

	room := &domain.Room{
		ID:        uuid.New(),
		Name:      "Sala",
		Code:      "ABCD1234",
		CreatedBy: user.ID,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.Room.Create(ctx, room))

	entry := &domain.ListEntry{
		ID:       uuid.New(),
		RoomID:   room.ID,
		UserID:   user.ID,
		ItemID:   603,
		ItemType: domain.MediaTypeMovie,
		Status:   domain.StatusWantToWatch,
	}
	require.NoError(t, repos.ListEntry.Create(ctx, entry))

	// A fresh store over the same file sees everything
	reopened, err := jsonfile.Open(path)
	require.NoError(t, err)
	repos = jsonfile.NewRepositories(reopened)

	gotUser, err := repos.User.GetByUsername(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)

	gotRoom, err := repos.Room.GetByCode(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, room.ID, gotRoom.ID)

	gotEntry, err := repos.ListEntry.GetByKey(ctx, entry.Key())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWantToWatch, gotEntry.Status)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)
	repos := jsonfile.NewRepositories(store)

	_, err = repos.User.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repos.Room.GetByCode(ctx, "XXXXXXXX")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repos.Rating.GetByKey(ctx, domain.ItemKey{
		RoomID: uuid.New(), UserID: uuid.New(), ItemID: 1, ItemType: domain.MediaTypeMovie,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeletePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database.json")

	store, err := jsonfile.Open(path)
	require.NoError(t, err)
	repos := jsonfile.NewRepositories(store)

	roomID, userID := uuid.New(), uuid.New()
	keys := []domain.ItemKey{
		{RoomID: roomID, UserID: userID, ItemID: 603, ItemType: domain.MediaTypeMovie},
		{RoomID: roomID, UserID: userID, ItemID: 604, ItemType: domain.MediaTypeMovie},
	}
	for _, key := range keys {
		require.NoError(t, repos.ListEntry.Create(ctx, &domain.ListEntry{
			ID: uuid.New(), RoomID: key.RoomID, UserID: key.UserID,
			ItemID: key.ItemID, ItemType: key.ItemType, Status: domain.StatusWatched,
		}))
	}

	require.NoError(t, repos.ListEntry.Delete(ctx, keys[0]))

	reopened, err := jsonfile.Open(path)
	require.NoError(t, err)
	repos = jsonfile.NewRepositories(reopened)

	entries, err := repos.ListEntry.ListByRoom(ctx, roomID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(604), entries[0].ItemID)
}
