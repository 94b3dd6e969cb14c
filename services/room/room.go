// File: services/room/room.go
package room

import (
	"context"
	"fmt"

	roomRepo "github.com/giavix1302/be-gym-management-system-sub000/database/repository/room"
	"github.com/giavix1302/be-gym-management-system-sub000/models"
	"github.com/giavix1302/be-gym-management-system-sub000/services/scheduling"
)

// RoomService manages the physical rooms the conflict engine guards.
type RoomService interface {
	CreateRoom(ctx context.Context, req models.CreateRoomRequest) (*models.Room, error)
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}

func (s *DefaultRoomService) CreateRoom(ctx context.Context, req models.CreateRoomRequest) (*models.Room, error) {
	room := models.Room{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	id, err := s.Repo.Create(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	room.ID = id
	return &room, nil
}

func (s *DefaultRoomService) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.Repo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, scheduling.NotFoundError{Code: scheduling.CodeRoomNotFound, ID: roomID}
	}
	return room, nil
}

func (s *DefaultRoomService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultRoomService) DeleteRoom(ctx context.Context, roomID string) error {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return err
	}
	return s.Repo.SoftDelete(ctx, roomID)
}
