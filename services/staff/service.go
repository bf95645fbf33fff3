// File: services/staff/service.go
package staff

import (
	"context"

	staffRepo "hotelify/database/repository/staff"
	"hotelify/models"

	"github.com/google/uuid"
)

// StaffService exposes staff CRUD. Updates are full-document.
type StaffService interface {
	Create(ctx context.Context, in models.StaffInput) (*models.Staff, error)
	List(ctx context.Context) ([]models.Staff, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	Update(ctx context.Context, id string, in models.StaffInput) (*models.Staff, error)
	Delete(ctx context.Context, id string) error
}

// DefaultStaffService is the production StaffService.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

func (s *DefaultStaffService) Create(ctx context.Context, in models.StaffInput) (*models.Staff, error) {
	staff, err := in.Validate()
	if err != nil {
		return nil, err
	}
	staff.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *DefaultStaffService) List(ctx context.Context) ([]models.Staff, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultStaffService) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultStaffService) Update(ctx context.Context, id string, in models.StaffInput) (*models.Staff, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff, err := in.Validate()
	if err != nil {
		return nil, err
	}
	staff.ID = existing.ID
	staff.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *DefaultStaffService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
