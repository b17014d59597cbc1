package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
)

func TestGetSettingsDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSettingsService(repos.SettingsRepository, zerolog.Nop())

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestUpdateSettingsPartial(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSettingsService(repos.SettingsRepository, zerolog.Nop())

	maintenance := true
	updated, err := svc.UpdateSettings(context.Background(), &dto.UpdateSettingsRequest{
		MaintenanceMode: &maintenance,
	})
	require.NoError(t, err)

	defaults := models.DefaultSettings()
	assert.True(t, updated.MaintenanceMode)
	assert.Equal(t, defaults.Theme, updated.Theme)
	assert.Equal(t, defaults.RegistrationOpen, updated.RegistrationOpen)
	assert.Equal(t, defaults.GuestAccess, updated.GuestAccess)

	// The change is persisted, not just echoed back
	stored, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, stored.MaintenanceMode)
}

func TestUpdateSettingsAllFields(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSettingsService(repos.SettingsRepository, zerolog.Nop())

	theme := "midnight"
	logo := "https://cdn.unistone.edu/logo.png"
	off := false

	updated, err := svc.UpdateSettings(context.Background(), &dto.UpdateSettingsRequest{
		Theme:            &theme,
		Logo:             &logo,
		RegistrationOpen: &off,
		GuestAccess:      &off,
	})
	require.NoError(t, err)

	assert.Equal(t, "midnight", updated.Theme)
	assert.Equal(t, logo, updated.Logo)
	assert.False(t, updated.RegistrationOpen)
	assert.False(t, updated.GuestAccess)
}
