package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/pkg/apperrors"
)

func TestSearchDirectoryExcludesSuspended(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))

	suspended := testStudent("STU-002", "John Doe", "john@unistone.edu")
	suspended.Status = models.StatusSuspended
	insertUser(t, repos, suspended)

	// Even an exact name match must not reveal a suspended account
	results, err := svc.SearchDirectory(context.Background(), "", "John Doe")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.SearchDirectory(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "STU-001", results[0].ID)
}

func TestSearchDirectoryCaseInsensitiveContains(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))
	insertUser(t, repos, testFaculty("FAC-001", "Dr. Alan Turing", "alan@unistone.edu"))

	results, err := svc.SearchDirectory(context.Background(), "", "CONNOR")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Sarah Connor", results[0].Name)

	results, err = svc.SearchDirectory(context.Background(), "faculty", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "FAC-001", results[0].ID)
}

func TestSearchDirectoryUnknownRoleFilter(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	_, err := svc.SearchDirectory(context.Background(), "admin", "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateProfilePreservesIdentityAndCounters(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	student := testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu")
	student.XP = 1200
	student.Streak = 5
	student.Attendance = 92
	insertUser(t, repos, student)

	updated, err := svc.UpdateProfile(context.Background(), "STU-001", &dto.UpdateProfileRequest{
		Name:       "Sarah C.",
		Department: "AI",
		Bio:        "Building the future.",
		Skills:     []string{"Go", "React"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Sarah C.", updated.Name)
	assert.Equal(t, "AI", updated.Department)
	assert.Equal(t, "STU-001", updated.ID)
	assert.Equal(t, "sarah@unistone.edu", updated.Email)
	assert.Equal(t, models.RoleStudent, updated.Role)
	assert.Equal(t, 1200, updated.XP)
	assert.Equal(t, 5, updated.Streak)
	assert.Equal(t, 92, updated.Attendance)

	stored, err := repos.UserRepository.FindByID("STU-001")
	require.NoError(t, err)
	assert.Equal(t, "Sarah C.", stored.Name)
	assert.Equal(t, 1200, stored.XP)
}

func TestListUsersUnknownList(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	_, err := svc.ListUsers(context.Background(), "admins")
	assert.ErrorIs(t, err, apperrors.ErrUnknownUserList)
}

func TestListUsersIncludesSuspended(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))

	suspended := testStudent("STU-002", "John Doe", "john@unistone.edu")
	suspended.Status = models.StatusSuspended
	insertUser(t, repos, suspended)

	users, err := svc.ListUsers(context.Background(), "students")
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestToggleStatusFlipsBothWays(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))

	updated, err := svc.ToggleStatus(context.Background(), "STU-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, updated.Status)

	updated, err = svc.ToggleStatus(context.Background(), "STU-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, updated.Status)
}

func TestDeleteUserRemovesExactlyOne(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.UserRepository, zerolog.Nop())

	insertUser(t, repos, testStudent("STU-001", "Sarah Connor", "sarah@unistone.edu"))
	insertUser(t, repos, testFaculty("FAC-001", "Dr. Alan Turing", "alan@unistone.edu"))

	require.NoError(t, svc.DeleteUser(context.Background(), "STU-001"))

	students, err := repos.UserRepository.ListByRole(models.RoleStudent)
	require.NoError(t, err)
	assert.Empty(t, students)

	faculty, err := repos.UserRepository.ListByRole(models.RoleFaculty)
	require.NoError(t, err)
	assert.Len(t, faculty, 1)

	err = svc.DeleteUser(context.Background(), "STU-001")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
