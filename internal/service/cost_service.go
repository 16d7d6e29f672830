// internal/service/cost_service.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/DanielA2212/ServerSideProject/internal/domain"
	"github.com/DanielA2212/ServerSideProject/internal/repository"
	"github.com/DanielA2212/ServerSideProject/internal/util"
)

// Report years are bounded to this window when Policy.EnforceYearRange is set.
const (
	minReportYear = 2000
	maxReportYear = 2100
)

// Policy holds the configurable validation decisions.
type Policy struct {
	// AllowNonPositiveSum accepts zero and negative cost sums (refunds,
	// corrections) when true; when false, sums must be strictly positive.
	AllowNonPositiveSum bool
	// EnforceYearRange rejects report years outside [2000, 2100].
	EnforceYearRange bool
}

// CostService defines the interface for cost-related business logic.
type CostService interface {
	// AddCost validates and persists a new cost entry for an existing user.
	// A nil date defaults the occurrence date to the time of persistence.
	AddCost(ctx context.Context, userID int64, description, category string, sum decimal.Decimal, date *time.Time) (*domain.Cost, error)
	// MonthlyReport computes a user's category-grouped report for one
	// calendar month. Year and month arrive as raw query strings and are
	// validated here, after the user has been resolved.
	MonthlyReport(ctx context.Context, userID int64, year, month string) (*domain.MonthlyReport, error)
	// UserSummary returns a user's name fields and lifetime cost total.
	UserSummary(ctx context.Context, userID int64) (*domain.UserSummary, error)
}

// costService implements the CostService interface.
type costService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	costRepo   repository.CostRepository
	policy     Policy
}

// NewCostService creates a new instance of CostService.
func NewCostService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	costRepo repository.CostRepository,
	policy Policy,
) CostService {
	return &costService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		costRepo:   costRepo,
		policy:     policy,
	}
}

// resolveUser maps a missing user onto ErrUserNotFound and wraps store errors.
func (s *costService) resolveUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}
	return user, nil
}

// AddCost validates and persists a new cost entry. The user must exist before
// any field validation runs; no record is written on any failure path.
func (s *costService) AddCost(ctx context.Context, userID int64, description, category string, sum decimal.Decimal, date *time.Time) (*domain.Cost, error) {
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	cat := domain.Category(category)
	if !cat.IsValid() {
		return nil, fmt.Errorf("%w: must be one of %s", util.ErrInvalidCategory, domain.AllowedCategories())
	}

	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: cannot be empty", util.ErrInvalidDescription)
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: cannot exceed %d characters", util.ErrInvalidDescription, domain.MaxDescriptionLength)
	}

	if !s.policy.AllowNonPositiveSum && sum.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: must be greater than zero", util.ErrInvalidSum)
	}

	var occurredAt time.Time
	if date != nil {
		occurredAt = *date
	}
	cost := domain.NewCost(userID, trimmed, cat, sum, occurredAt)
	if err := s.costRepo.CreateCost(ctx, s.dbExecutor, cost); err != nil {
		return nil, fmt.Errorf("add cost: %w", err)
	}
	return cost, nil
}

// MonthlyReport resolves the user, validates year/month, and aggregates the
// user's costs for that calendar month into fixed-order category buckets.
func (s *costService) MonthlyReport(ctx context.Context, userID int64, year, month string) (*domain.MonthlyReport, error) {
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	// Year format is checked before month format.
	if !isAllDigits(year) {
		return nil, util.ErrInvalidYearFormat
	}
	if !isAllDigits(month) {
		return nil, util.ErrInvalidMonthFormat
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return nil, util.ErrInvalidYearFormat
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return nil, util.ErrInvalidMonthFormat
	}

	if m < 1 || m > 12 {
		return nil, util.ErrInvalidMonth
	}
	if s.policy.EnforceYearRange && (y < minReportYear || y > maxReportYear) {
		return nil, util.ErrInvalidYearRange
	}

	start, end := domain.MonthWindow(y, m)
	costs, err := s.costRepo.GetCostsByUserAndRange(ctx, s.dbExecutor, userID, start, end)
	if err != nil {
		// A store failure is never reported as an empty report.
		return nil, fmt.Errorf("monthly report: %w", err)
	}

	return domain.BuildMonthlyReport(userID, y, m, costs), nil
}

// UserSummary returns the user's stored names and the arithmetic sum of all
// their costs, zero when they have none.
func (s *costService) UserSummary(ctx context.Context, userID int64) (*domain.UserSummary, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.costRepo.SumByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("user summary: %w", err)
	}

	return &domain.UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Total:     total,
	}, nil
}

// isAllDigits reports whether s is non-empty and consists of ASCII digits only.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
