// internal/repository/sqlite/cost_sqlite.go
package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/DanielA2212/ServerSideProject/internal/domain"
	"github.com/DanielA2212/ServerSideProject/internal/repository"
)

// CostRepository implements repository.CostRepository for SQLite.
type CostRepository struct{}

// NewCostRepository creates a new CostRepository.
func NewCostRepository(db *sqlx.DB) repository.CostRepository {
	return &CostRepository{}
}

// CreateCost inserts a new cost record using the provided DBExecutor and sets
// the store-assigned ID via last-insert-id.
func (r *CostRepository) CreateCost(ctx context.Context, q repository.DBExecutor, cost *domain.Cost) error {
	query := `INSERT INTO costs (user_id, description, category, sum, date, created_at)
              VALUES (?, ?, ?, ?, ?, ?)`
	res, err := q.ExecContext(ctx, query,
		cost.UserID,
		cost.Description,
		cost.Category,
		cost.Sum,
		cost.Date,
		cost.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create cost for user %d: %w", cost.UserID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new cost id for user %d: %w", cost.UserID, err)
	}
	cost.ID = id
	return nil
}

// GetCostsByUserAndRange retrieves a user's costs with occurrence date in [from, to).
// All dates are stored in UTC, so the text comparison SQLite performs on
// DATETIME columns matches chronological order.
func (r *CostRepository) GetCostsByUserAndRange(ctx context.Context, q repository.DBExecutor, userID int64, from, to time.Time) ([]domain.Cost, error) {
	costs := []domain.Cost{}
	query := `
		SELECT id, user_id, description, category, sum, date, created_at
		FROM costs
		WHERE user_id = ? AND date >= ? AND date < ?
		ORDER BY date ASC, id ASC`
	err := q.SelectContext(ctx, &costs, query, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch costs for user %d: %w", userID, err)
	}
	return costs, nil
}

// SumByUser returns the sum of all of a user's cost sums, zero when none exist.
func (r *CostRepository) SumByUser(ctx context.Context, q repository.DBExecutor, userID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(sum), 0) FROM costs WHERE user_id = ?`
	err := q.GetContext(ctx, &total, query, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum costs for user %d: %w", userID, err)
	}
	return total, nil
}
