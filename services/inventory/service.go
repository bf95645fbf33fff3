// File: services/inventory/service.go
package inventory

import (
	"context"

	inventoryRepo "hotelify/database/repository/inventory"
	"hotelify/models"

	"github.com/google/uuid"
)

// InventoryService exposes inventory CRUD. Updates are full-document.
type InventoryService interface {
	Create(ctx context.Context, in models.InventoryInput) (*models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*models.InventoryItem, error)
	Update(ctx context.Context, id string, in models.InventoryInput) (*models.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

// DefaultInventoryService is the production InventoryService.
type DefaultInventoryService struct {
	Repo inventoryRepo.InventoryRepository
}

func (s *DefaultInventoryService) Create(ctx context.Context, in models.InventoryInput) (*models.InventoryItem, error) {
	item, err := in.Validate()
	if err != nil {
		return nil, err
	}
	item.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *DefaultInventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultInventoryService) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultInventoryService) Update(ctx context.Context, id string, in models.InventoryInput) (*models.InventoryItem, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := in.Validate()
	if err != nil {
		return nil, err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *DefaultInventoryService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
