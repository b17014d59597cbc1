package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/repositories"
	"github.com/unistone/campus/internal/store"
)

// newTestRepos builds the repository container over a throwaway store.
func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()

	db, err := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	return repositories.NewRepositories(db)
}

func insertUser(t *testing.T, repos *repositories.Repositories, user models.User) {
	t.Helper()
	require.NoError(t, repos.UserRepository.Insert(&user))
}

func testStudent(id, name, email string) models.User {
	return models.User{
		ID:     id,
		Name:   name,
		Email:  email,
		Role:   models.RoleStudent,
		Status: models.StatusActive,
	}
}

func testFaculty(id, name, email string) models.User {
	return models.User{
		ID:     id,
		Name:   name,
		Email:  email,
		Role:   models.RoleFaculty,
		Status: models.StatusActive,
	}
}
