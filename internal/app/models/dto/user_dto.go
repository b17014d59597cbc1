package dto

import "github.com/unistone/campus/internal/app/models"

// UpdateProfileRequest carries the full replacement profile for the signed-in
// user. Identity fields (id, role, email) are taken from the session, never
// from the body.
type UpdateProfileRequest struct {
	Name        string           `json:"name" binding:"required"`
	Department  string           `json:"department"`
	Bio         string           `json:"bio"`
	Skills      []string         `json:"skills"`
	Projects    []models.Project `json:"projects"`
	GithubURL   string           `json:"githubUrl"`
	LinkedinURL string           `json:"linkedinUrl"`
	Image       string           `json:"image"`
	CoverImage  string           `json:"coverImage"`
	Block       string           `json:"block"`
}

// CreateUserRequest represents an admin creating a student or faculty record
type CreateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
	Block      string `json:"block"`
}

// UserListResponse represents a list of users from one role list
type UserListResponse struct {
	Users []models.User `json:"users"`
}

// DirectoryResponse represents a people-search result
type DirectoryResponse struct {
	Results []models.User `json:"results"`
}
