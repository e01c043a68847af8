package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/gilson1254/catalogo-de-filmes/internal/domain"
	"github.com/gilson1254/catalogo-de-filmes/internal/repository"
	"github.com/google/uuid"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 8
)

type RoomService struct {
	roomRepo   repository.RoomRepository
	memberRepo repository.RoomMemberRepository
}

func NewRoomService(roomRepo repository.RoomRepository, memberRepo repository.RoomMemberRepository) *RoomService {
	return &RoomService{
		roomRepo:   roomRepo,
		memberRepo: memberRepo,
	}
}

type CreateRoomInput struct {
	CreatedBy uuid.UUID
	Name      string
}

// CreateRoom creates the room and binds the creator as its first member.
// Codes are assumed unique by the low collision probability of random
// generation; no uniqueness check is made.
func (s *RoomService) CreateRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	room := &domain.Room{
		ID:        uuid.New(),
		Name:      input.Name,
		Code:      generateRoomCode(),
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	member := &domain.RoomMember{
		RoomID:   room.ID,
		UserID:   input.CreatedBy,
		JoinedAt: room.CreatedAt,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return room, nil
}

// JoinRoom looks the room up by code, case-insensitively, and inserts a
// membership unless one already exists. Rejoining is a no-op, not an error.
func (s *RoomService) JoinRoom(ctx context.Context, userID uuid.UUID, code string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	isMember, err := s.memberRepo.Exists(ctx, room.ID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		member := &domain.RoomMember{
			RoomID:   room.ID,
			UserID:   userID,
			JoinedAt: time.Now().UTC(),
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			return nil, err
		}
	}

	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, idOrCode string) (*domain.Room, error) {
	var (
		room *domain.Room
		err  error
	)
	if id, parseErr := uuid.Parse(idOrCode); parseErr == nil {
		room, err = s.roomRepo.GetByID(ctx, id)
	} else {
		room, err = s.roomRepo.GetByCode(ctx, strings.ToUpper(idOrCode))
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) GetUserRooms(ctx context.Context, userID uuid.UUID) ([]*domain.Room, error) {
	return s.roomRepo.GetByMember(ctx, userID)
}

func generateRoomCode() string {
	code := make([]byte, roomCodeLength)
	max := big.NewInt(int64(len(roomCodeAlphabet)))
	for i := range code {
		n, _ := rand.Int(rand.Reader, max)
		code[i] = roomCodeAlphabet[n.Int64()]
	}
	return string(code)
}
