package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/pkg/auth"
)

// TestSuspensionLifecycle walks the full moderation flow: a student signs in
// and is visible in the directory, an admin suspends them, they vanish from
// search and can no longer sign in, and reactivation restores both.
func TestSuspensionLifecycle(t *testing.T) {
	repos := newTestRepos(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "unistone.edu",
	})
	authSvc := NewAuthService(repos.UserRepository, repos.SettingsRepository, jwtService, zerolog.Nop())
	userSvc := NewUserService(repos.UserRepository, zerolog.Nop())

	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))

	ctx := context.Background()

	resp, err := authSvc.Login(ctx, &dto.LoginRequest{Email: "sarah@unistone.edu", Role: "student"})
	require.NoError(t, err)
	assert.Equal(t, "STU-001", resp.User.ID)

	results, err := userSvc.SearchDirectory(ctx, "", "sarah")
	require.NoError(t, err)
	require.Len(t, results, 1)

	suspended, err := userSvc.ToggleStatus(ctx, "STU-001")
	require.NoError(t, err)
	assert.True(t, suspended.IsSuspended())

	results, err = userSvc.SearchDirectory(ctx, "", "sarah")
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = authSvc.Login(ctx, &dto.LoginRequest{Email: "sarah@unistone.edu", Role: "student"})
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)

	_, err = userSvc.ToggleStatus(ctx, "STU-001")
	require.NoError(t, err)

	resp, err = authSvc.Login(ctx, &dto.LoginRequest{Email: "sarah@unistone.edu", Role: "student"})
	require.NoError(t, err)
	assert.Equal(t, "STU-001", resp.User.ID)
}
