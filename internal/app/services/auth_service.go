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
	"github.com/unistone/campus/internal/pkg/auth"
)

// adminEmail is the fixed administrator address. The admin account is
// synthesized at sign-in and never stored in a role list.
const adminEmail = "admin@unistone.edu"

const (
	adminImage   = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&q=80&w=400"
	defaultImage = "https://images.unsplash.com/photo-1511367461989-f85a21fda167?auto=format&fit=crop&q=80&w=400"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo     repositories.IUserRepository
	settingsRepo *repositories.SettingsRepository
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	settingsRepo *repositories.SettingsRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login resolves the account for an email and role choice. There is no
// password: the admin address always binds to the admin role, known emails
// sign in to their stored record, and unknown addresses containing "@"
// self-register a fresh record when registration is open. This is a demo
// trust model, not a security boundary.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)

	s.logger.Debug().Str("email", email).Str("role", req.Role).Msg("Login attempt")

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	isAdmin := strings.EqualFold(email, adminEmail)

	if settings.MaintenanceMode && !isAdmin {
		return nil, apperrors.ErrMaintenanceMode
	}

	var user *models.User
	if isAdmin {
		user = &models.User{
			ID:         "ADM-001",
			Name:       "System Administrator",
			Email:      email,
			Role:       models.RoleAdmin,
			Department: "Administration",
			Status:     models.StatusActive,
			Image:      adminImage,
		}
	} else {
		user, err = s.findOrRegister(email, models.UserRole(req.Role), settings)
		if err != nil {
			return nil, err
		}
	}

	if user.IsSuspended() {
		s.logger.Info().Str("userID", user.ID).Msg("Suspended account rejected at sign-in")
		return nil, apperrors.ErrAccountSuspended
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Failed to sign session token")
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("role", string(user.Role)).Msg("User signed in")

	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: *user,
	}, nil
}

// findOrRegister looks the email up in the chosen role list, creating a
// fresh record for unknown addresses that look like an email.
func (s *authServiceImpl) findOrRegister(email string, role models.UserRole, settings models.Settings) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(role, email)
	if err == nil {
		return user, nil
	}

	if !strings.Contains(email, "@") {
		return nil, apperrors.ErrUserNotFound
	}

	if !settings.RegistrationOpen {
		return nil, apperrors.ErrRegistrationClosed
	}

	prefix := "STU"
	if role == models.RoleFaculty {
		prefix = "FAC"
	}

	fresh := &models.User{
		ID:         fmt.Sprintf("%s-%d", prefix, rand.Intn(1000)),
		Name:       strings.SplitN(email, "@", 2)[0],
		Email:      email,
		Role:       role,
		Department: "General",
		Status:     models.StatusActive,
		Image:      defaultImage,
	}

	if err := s.userRepo.Insert(fresh); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", fresh.ID).Str("role", string(role)).Msg("Self-registered new user")
	return fresh, nil
}
