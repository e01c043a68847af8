package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(name string) *UserBuilder {
	b.username = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the store and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, repos *repository.Repositories) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := repos.User.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via the API and returns the user and
// access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"username": b.username,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:       userID,
		Username: authResp.User.Username,
	}

	return user, authResp.AccessToken
}

// SeedRoom creates a room with the user as creator and sole member
func SeedRoom(t *testing.T, repos *repository.Repositories, creator *domain.User, name string) *domain.Room {
	t.Helper()

	ctx := context.Background()
	room := &domain.Room{
		ID:        uuid.New(),
		Name:      name,
		Code:      strings.ToUpper(uuid.New().String()[:8]),
		CreatedBy: creator.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := repos.Room.Create(ctx, room); err != nil {
		t.Fatalf("failed to create room: %v", err)
	}

	member := &domain.RoomMember{
		RoomID:   room.ID,
		UserID:   creator.ID,
		JoinedAt: time.Now().UTC(),
	}
	if err := repos.RoomMember.Create(ctx, member); err != nil {
		t.Fatalf("failed to add room member: %v", err)
	}

	return room
}

// SeedListEntry creates a list entry directly in the store
func SeedListEntry(t *testing.T, repos *repository.Repositories, key domain.ItemKey, status domain.WatchStatus) *domain.ListEntry {
	t.Helper()

	now := time.Now().UTC()
	entry := &domain.ListEntry{
		ID:        uuid.New(),
		RoomID:    key.RoomID,
		UserID:    key.UserID,
		ItemID:    key.ItemID,
		ItemType:  key.ItemType,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repos.ListEntry.Create(context.Background(), entry); err != nil {
		t.Fatalf("failed to create list entry: %v", err)
	}
	return entry
}

// SeedRating creates a rating directly in the store
func SeedRating(t *testing.T, repos *repository.Repositories, key domain.ItemKey, score int) *domain.Rating {
	t.Helper()

	rating := &domain.Rating{
		ID:        uuid.New(),
		RoomID:    key.RoomID,
		UserID:    key.UserID,
		ItemID:    key.ItemID,
		ItemType:  key.ItemType,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
	if err := repos.Rating.Create(context.Background(), rating); err != nil {
		t.Fatalf("failed to create rating: %v", err)
	}
	return rating
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// DoRequest executes an authenticated request and registers body cleanup
func DoRequest(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	req := CreateAuthenticatedRequest(t, method, url, body, token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
