// File: services/guest/service.go
package guest

import (
	"context"

	guestRepo "hotelify/database/repository/guest"
	"hotelify/models"

	"github.com/google/uuid"
)

// GuestService exposes guest CRUD. Visits and activities are owned by the
// booking cascade and cannot be edited through updates here.
type GuestService interface {
	Create(ctx context.Context, in models.GuestInput) (*models.Guest, error)
	List(ctx context.Context) ([]models.Guest, error)
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	Update(ctx context.Context, id string, upd models.GuestUpdate) (*models.Guest, error)
	Delete(ctx context.Context, id string) error
}

// DefaultGuestService is the production GuestService.
type DefaultGuestService struct {
	Repo guestRepo.GuestRepository
}

func (s *DefaultGuestService) Create(ctx context.Context, in models.GuestInput) (*models.Guest, error) {
	guest, err := in.Validate()
	if err != nil {
		return nil, err
	}
	guest.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *DefaultGuestService) List(ctx context.Context) ([]models.Guest, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultGuestService) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultGuestService) Update(ctx context.Context, id string, upd models.GuestUpdate) (*models.Guest, error) {
	guest, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := upd.ApplyTo(guest); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *DefaultGuestService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
