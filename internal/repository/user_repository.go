package repository

import (
	"context"

	"blog-backend/internal/domain/entity"
)

type UserRepository interface {
	// Get returns (nil, nil) if the user is not found.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// Exists reports whether a user with the given ID exists. Used to resolve
	// author/commenter references before a write is accepted.
	Exists(ctx context.Context, id int64) (bool, error)
	// Create inserts the user and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error
	Count(ctx context.Context) (int64, error)
}
