package dto

import "github.com/unistone/campus/internal/app/models"

// LoginRequest represents a sign-in attempt. There is no password: the
// portal runs an open trust model where the email plus the chosen role
// select (or create) the account.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required,oneof=student faculty"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// LoginResponse bundles the signed-in user with their session token
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  models.User   `json:"user"`
}
