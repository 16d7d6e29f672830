// internal/repository/cost_repo.go
package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DanielA2212/ServerSideProject/internal/domain"
)

// CostRepository defines the interface for cost data operations.
type CostRepository interface {
	// CreateCost adds a new cost record to the store using the provided
	// DBExecutor, setting the store-assigned ID on the passed cost.
	CreateCost(ctx context.Context, q DBExecutor, cost *domain.Cost) error
	// GetCostsByUserAndRange retrieves a user's costs with occurrence date in
	// the half-open window [from, to), ordered by date then id ascending.
	GetCostsByUserAndRange(ctx context.Context, q DBExecutor, userID int64, from, to time.Time) ([]domain.Cost, error)
	// SumByUser returns the arithmetic sum of all of a user's cost sums,
	// zero when the user has no costs.
	SumByUser(ctx context.Context, q DBExecutor, userID int64) (decimal.Decimal, error)
}
