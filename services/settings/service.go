// File: services/settings/service.go
package settings

import (
	"context"

	settingsRepo "hotelify/database/repository/settings"
	"hotelify/models"

	"github.com/google/uuid"
)

// SettingsService manages the hotel-wide configuration document. There is
// exactly one; GetOrCreate seeds it with defaults so no caller ever observes
// an absent configuration.
type SettingsService interface {
	GetOrCreate(ctx context.Context) (*models.Setting, error)
	Update(ctx context.Context, setting models.Setting) (*models.Setting, error)
}

// DefaultSettingsService is the production SettingsService.
type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
}

// GetOrCreate returns the settings document, seeding the defaults when none
// exists yet.
func (s *DefaultSettingsService) GetOrCreate(ctx context.Context) (*models.Setting, error) {
	setting, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if setting != nil {
		return setting, nil
	}

	setting = models.DefaultSetting()
	setting.ID = uuid.New().String()
	if err := s.Repo.Create(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

// Update validates and persists the full settings document, creating it when
// none exists yet.
func (s *DefaultSettingsService) Update(ctx context.Context, setting models.Setting) (*models.Setting, error) {
	if err := setting.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		setting.ID = uuid.New().String()
		if err := s.Repo.Create(ctx, &setting); err != nil {
			return nil, err
		}
		return &setting, nil
	}

	setting.ID = existing.ID
	setting.CreatedAt = existing.CreatedAt
	if err := s.Repo.Replace(ctx, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}
