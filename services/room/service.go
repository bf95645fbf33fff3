// File: services/room/service.go
package room

import (
	"context"

	roomRepo "hotelify/database/repository/room"
	"hotelify/models"

	"github.com/google/uuid"
)

// RoomService exposes room CRUD. Room status changes applied here are
// trusted back-office edits; the booking cascade owns status during a
// booking's lifetime.
type RoomService interface {
	Create(ctx context.Context, in models.RoomInput) (*models.Room, error)
	List(ctx context.Context, filter roomRepo.RoomFilter) ([]models.Room, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	Update(ctx context.Context, id string, upd models.RoomUpdate) (*models.Room, error)
	Delete(ctx context.Context, id string) error
}

// DefaultRoomService is the production RoomService.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}

func (s *DefaultRoomService) Create(ctx context.Context, in models.RoomInput) (*models.Room, error) {
	room, err := in.Validate()
	if err != nil {
		return nil, err
	}
	room.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultRoomService) List(ctx context.Context, filter roomRepo.RoomFilter) ([]models.Room, error) {
	return s.Repo.List(ctx, filter)
}

func (s *DefaultRoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultRoomService) Update(ctx context.Context, id string, upd models.RoomUpdate) (*models.Room, error) {
	room, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := upd.ApplyTo(room); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultRoomService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
