package repositories

import (
	"strings"
	"sync"

	"github.com/unistone/campus/internal/app/models"
	"github.com/unistone/campus/internal/pkg/apperrors"
	"github.com/unistone/campus/internal/store"
)

// IUserRepository defines the interface for user list operations. Students
// and faculty live in separate slices; the repository hides which slice a
// user record came from.
type IUserRepository interface {
	ListByRole(role models.UserRole) ([]models.User, error)
	FindByEmail(role models.UserRole, email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	Insert(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	SetStatus(id string, status models.UserStatus) (*models.User, error)
	AddXP(id string, amount int) (*models.User, error)
}

// UserRepository stores student and faculty records in their role slices
type UserRepository struct {
	db *store.Store
	mu sync.Mutex
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *store.Store) *UserRepository {
	return &UserRepository{db: db}
}

func roleKey(role models.UserRole) (string, error) {
	switch role {
	case models.RoleStudent:
		return KeyStudents, nil
	case models.RoleFaculty:
		return KeyFaculty, nil
	default:
		return "", apperrors.ErrUnknownUserList
	}
}

func (r *UserRepository) load(key string) []models.User {
	var users []models.User
	r.db.Read(key, &users, []models.User{})
	return users
}

// ListByRole returns all users stored in the slice for the given role
func (r *UserRepository) ListByRole(role models.UserRole) ([]models.User, error) {
	key, err := roleKey(role)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(key), nil
}

// FindByEmail searches the role slice for a case-insensitive email match
func (r *UserRepository) FindByEmail(role models.UserRole, email string) (*models.User, error) {
	key, err := roleKey(role)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.load(key) {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// FindByID searches both role slices for the given user ID
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range []string{KeyStudents, KeyFaculty} {
		for _, u := range r.load(key) {
			if u.ID == id {
				user := u
				return &user, nil
			}
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Insert appends a user to the slice matching their role
func (r *UserRepository) Insert(user *models.User) error {
	key, err := roleKey(user.Role)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(key)
	users = append(users, *user)
	r.db.Write(key, users)
	return nil
}

// Update replaces the stored record matching the user's ID
func (r *UserRepository) Update(user *models.User) error {
	key, err := roleKey(user.Role)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(key)
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			r.db.Write(key, users)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

// Delete removes exactly one record matching the ID, whichever role slice
// holds it. The other slice is left untouched.
func (r *UserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range []string{KeyStudents, KeyFaculty} {
		users := r.load(key)
		for i := range users {
			if users[i].ID == id {
				users = append(users[:i], users[i+1:]...)
				r.db.Write(key, users)
				return nil
			}
		}
	}
	return apperrors.ErrUserNotFound
}

// SetStatus updates the status of the record matching the ID and returns
// the updated record
func (r *UserRepository) SetStatus(id string, status models.UserStatus) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range []string{KeyStudents, KeyFaculty} {
		users := r.load(key)
		for i := range users {
			if users[i].ID == id {
				users[i].Status = status
				r.db.Write(key, users)
				user := users[i]
				return &user, nil
			}
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// AddXP increments a student's XP counter and returns the updated record
func (r *UserRepository) AddXP(id string, amount int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(KeyStudents)
	for i := range users {
		if users[i].ID == id {
			users[i].XP += amount
			r.db.Write(KeyStudents, users)
			user := users[i]
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
