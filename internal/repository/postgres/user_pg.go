// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/DanielA2212/ServerSideProject/internal/domain"
	"github.com/DanielA2212/ServerSideProject/internal/repository"
	"github.com/DanielA2212/ServerSideProject/internal/util"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (id, first_name, last_name, birthday, marital_status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Birthday, user.MaritalStatus, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user %d: %w", user.ID, err)
	}
	return nil
}

// GetUserByID retrieves a user by their logical ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, first_name, last_name, birthday, marital_status, created_at
              FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}
