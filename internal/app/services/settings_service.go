package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
)

// SettingsService defines the interface for platform settings operations
type SettingsService interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (models.Settings, error)
}

// settingsServiceImpl implements SettingsService
type settingsServiceImpl struct {
	settingsRepo *repositories.SettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo *repositories.SettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings returns the current platform settings
func (s *settingsServiceImpl) GetSettings(ctx context.Context) (models.Settings, error) {
	return s.settingsRepo.Get()
}

// UpdateSettings applies the provided fields on top of the stored settings.
// Absent fields are left unchanged.
func (s *settingsServiceImpl) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (models.Settings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return models.Settings{}, err
	}

	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.Logo != nil {
		settings.Logo = *req.Logo
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}
	if req.RegistrationOpen != nil {
		settings.RegistrationOpen = *req.RegistrationOpen
	}
	if req.GuestAccess != nil {
		settings.GuestAccess = *req.GuestAccess
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return models.Settings{}, err
	}

	s.logger.Info().
		Bool("maintenanceMode", settings.MaintenanceMode).
		Bool("registrationOpen", settings.RegistrationOpen).
		Bool("guestAccess", settings.GuestAccess).
		Msg("Platform settings updated")

	return settings, nil
}
