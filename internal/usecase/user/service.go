// Package user provides use cases for managing user accounts.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/repository"
)

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID indicates that the provided user ID is invalid.
	ErrInvalidUserID = errors.New("invalid user ID")
)

const minPasswordLength = 8

// CreateInput represents the input parameters for creating a user account.
type CreateInput struct {
	Name     string
	Password string
}

// Service provides user account use cases. Passwords are stored only as
// bcrypt hashes.
type Service struct {
	Repo repository.UserRepository
}

// Get retrieves a user by ID.
// Returns ErrInvalidUserID if the ID is not positive.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Create registers a new user with a bcrypt-hashed password.
// Returns a ValidationError if the name is missing or the password is too short.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if len(in.Password) < minPasswordLength {
		return nil, &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Name:         in.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
