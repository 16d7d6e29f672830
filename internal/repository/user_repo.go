// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/DanielA2212/ServerSideProject/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the store using the provided DBExecutor.
	// The user's ID is caller-supplied, not store-assigned.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their logical ID using the provided
	// DBExecutor. Returns util.ErrNotFound when the user does not exist.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
}
