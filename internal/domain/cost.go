// internal/domain/cost.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Category is the closed set of cost categories.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySport     Category = "sport"
	CategoryEducation Category = "education"
)

// Categories is the single source-of-truth list shared by validation and
// reporting.
var Categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySport,
	CategoryEducation,
}

// ReportOrder is the fixed order in which category buckets appear in a
// monthly report, independent of which categories have matching costs.
var ReportOrder = []Category{
	CategoryFood,
	CategoryEducation,
	CategoryHealth,
	CategoryHousing,
	CategorySport,
}

// IsValid reports whether c is a member of the category taxonomy.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// AllowedCategories returns the taxonomy as a comma-separated string,
// suitable for validation error messages.
func AllowedCategories() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// MaxDescriptionLength bounds a cost description after trimming.
const MaxDescriptionLength = 100

// Cost represents one dated expense entry owned by a user.
// A cost is created exactly once and never mutated or deleted.
type Cost struct {
	ID          int64           `db:"id" json:"id"`                   // Primary key, store-assigned
	UserID      int64           `db:"user_id" json:"userid"`          // Owning user's logical ID
	Description string          `db:"description" json:"description"` // Trimmed, 1-100 characters
	Category    Category        `db:"category" json:"category"`       // Member of the fixed taxonomy
	Sum         decimal.Decimal `db:"sum" json:"sum"`                 // NUMERIC(20, 4) in DB
	Date        time.Time       `db:"date" json:"date"`               // Occurrence date, UTC
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`   // Timestamp of record creation
}

// NewCost creates a new Cost instance. A zero date defaults to the current
// time, matching the behavior when the caller omits the occurrence date.
func NewCost(userID int64, description string, category Category, sum decimal.Decimal, date time.Time) *Cost {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	return &Cost{
		UserID:      userID,
		Description: strings.TrimSpace(description),
		Category:    category,
		Sum:         sum,
		Date:        date.UTC(),
		CreatedAt:   now,
	}
}
