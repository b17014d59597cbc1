package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/repositories"
	"github.com/unistone/campus/internal/pkg/apperrors"
)

// UserService defines the interface for profile, directory and admin user
// management operations
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	SearchDirectory(ctx context.Context, role, query string) ([]models.User, error)
	ListUsers(ctx context.Context, list string) ([]models.User, error)
	CreateUser(ctx context.Context, list string, req *dto.CreateUserRequest) (*models.User, error)
	ToggleStatus(ctx context.Context, userID string) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// listRole maps an admin console list name to a role
func listRole(list string) (models.UserRole, error) {
	switch list {
	case "students":
		return models.RoleStudent, nil
	case "faculty":
		return models.RoleFaculty, nil
	default:
		return "", apperrors.ErrUnknownUserList
	}
}

// GetProfile returns the stored record for a signed-in user
func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile replaces the editable profile fields of the user's record.
// Identity fields (id, role, email) and academic counters are preserved
// from the stored record regardless of the request body.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Department = req.Department
	user.Bio = req.Bio
	user.Skills = req.Skills
	user.Projects = req.Projects
	user.GithubURL = req.GithubURL
	user.LinkedinURL = req.LinkedinURL
	user.Image = req.Image
	user.CoverImage = req.CoverImage
	user.Block = req.Block

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("userID", userID).Msg("Profile updated")
	return user, nil
}

// SearchDirectory returns active users whose name contains the query,
// case-insensitively. Suspended accounts never appear, even on an exact
// match. An empty role searches both lists.
func (s *userServiceImpl) SearchDirectory(ctx context.Context, role, query string) ([]models.User, error) {
	var roles []models.UserRole
	switch role {
	case "":
		roles = []models.UserRole{models.RoleStudent, models.RoleFaculty}
	case string(models.RoleStudent):
		roles = []models.UserRole{models.RoleStudent}
	case string(models.RoleFaculty):
		roles = []models.UserRole{models.RoleFaculty}
	default:
		return nil, apperrors.NewBadRequestError("Unknown directory role filter")
	}

	needle := strings.ToLower(strings.TrimSpace(query))

	results := make([]models.User, 0)
	for _, r := range roles {
		users, err := s.userRepo.ListByRole(r)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			if u.IsSuspended() {
				continue
			}
			if needle == "" || strings.Contains(strings.ToLower(u.Name), needle) {
				results = append(results, u)
			}
		}
	}
	return results, nil
}

// ListUsers returns one admin console list, including suspended accounts
func (s *userServiceImpl) ListUsers(ctx context.Context, list string) ([]models.User, error) {
	role, err := listRole(list)
	if err != nil {
		return nil, err
	}
	return s.userRepo.ListByRole(role)
}

// CreateUser adds a record to the chosen list on behalf of an administrator
func (s *userServiceImpl) CreateUser(ctx context.Context, list string, req *dto.CreateUserRequest) (*models.User, error) {
	role, err := listRole(list)
	if err != nil {
		return nil, err
	}

	prefix := "STU"
	if role == models.RoleFaculty {
		prefix = "FAC"
	}

	user := &models.User{
		ID:         fmt.Sprintf("%s-%d", prefix, rand.Intn(1000)),
		Name:       req.Name,
		Email:      req.Email,
		Role:       role,
		Department: req.Department,
		Block:      req.Block,
		Status:     models.StatusActive,
	}

	if err := s.userRepo.Insert(user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("list", list).Msg("User created by admin")
	return user, nil
}

// ToggleStatus flips a user between Active and Suspended
func (s *userServiceImpl) ToggleStatus(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	status := models.StatusSuspended
	if user.IsSuspended() {
		status = models.StatusActive
	}

	updated, err := s.userRepo.SetStatus(userID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", userID).Str("status", string(status)).Msg("User status toggled")
	return updated, nil
}

// DeleteUser removes exactly one record matching the ID
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}

	s.logger.Info().Str("userID", userID).Msg("User deleted by admin")
	return nil
}
