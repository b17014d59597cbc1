package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/pkg/auth"
)

func newAuthService(t *testing.T) (AuthService, *repositories.Repositories) {
	t.Helper()

	repos := newTestRepos(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "unistone.edu",
	})

	svc := NewAuthService(repos.UserRepository, repos.SettingsRepository, jwtService, zerolog.Nop())
	return svc, repos
}

func TestLoginAdminEmailOverridesRoleChoice(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "Admin@Unistone.edu",
		Role:  "student",
	})
	require.NoError(t, err)

	assert.Equal(t, "ADM-001", resp.User.ID)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, "System Administrator", resp.User.Name)
	assert.NotEmpty(t, resp.Token.AccessToken)
}

func TestLoginKnownUser(t *testing.T) {
	svc, repos := newAuthService(t)
	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "SARAH@unistone.edu",
		Role:  "student",
	})
	require.NoError(t, err)

	assert.Equal(t, "STU-001", resp.User.ID)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Greater(t, resp.Token.ExpiresIn, int64(0))
}

func TestLoginSuspendedAccountRejected(t *testing.T) {
	svc, repos := newAuthService(t)

	suspended := testStudent("STU-009", "Blocked", "blocked@unistone.edu")
	suspended.Status = models.StatusSuspended
	insertUser(t, repos, suspended)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "blocked@unistone.edu",
		Role:  "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountSuspended)
}

func TestLoginSelfRegistersUnknownEmail(t *testing.T) {
	svc, repos := newAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "fresh@unistone.edu",
		Role:  "student",
	})
	require.NoError(t, err)

	assert.Equal(t, "fresh", resp.User.Name)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.Equal(t, "General", resp.User.Department)
	assert.Zero(t, resp.User.XP)
	assert.Zero(t, resp.User.Attendance)

	students, err := repos.UserRepository.ListByRole(models.RoleStudent)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestLoginSecondSignInFindsRegisteredRecord(t *testing.T) {
	svc, repos := newAuthService(t)

	first, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "repeat@unistone.edu",
		Role:  "faculty",
	})
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "repeat@unistone.edu",
		Role:  "faculty",
	})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)

	faculty, err := repos.UserRepository.ListByRole(models.RoleFaculty)
	require.NoError(t, err)
	assert.Len(t, faculty, 1)
}

func TestLoginRegistrationClosed(t *testing.T) {
	svc, repos := newAuthService(t)

	settings := models.DefaultSettings()
	settings.RegistrationOpen = false
	require.NoError(t, repos.SettingsRepository.Save(settings))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "newcomer@unistone.edu",
		Role:  "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrRegistrationClosed)
}

func TestLoginRejectsNonEmailInput(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "not-an-email",
		Role:  "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLoginMaintenanceModeBlocksMembersNotAdmin(t *testing.T) {
	svc, repos := newAuthService(t)
	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))

	settings := models.DefaultSettings()
	settings.MaintenanceMode = true
	require.NoError(t, repos.SettingsRepository.Save(settings))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "sarah@unistone.edu",
		Role:  "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrMaintenanceMode)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "admin@unistone.edu",
		Role:  "student",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}
