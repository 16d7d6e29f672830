// internal/domain/report.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostItem is the projection of a cost inside a report bucket.
// Day is the day-of-month of the occurrence date, evaluated in UTC.
type CostItem struct {
	Sum         decimal.Decimal `json:"sum"`
	Description string          `json:"description"`
	Day         int             `json:"day"`
}

// CategoryBucket holds the cost items of exactly one category, keyed by the
// category name. The one-key-per-element shape is part of the wire format.
type CategoryBucket map[string][]CostItem

// MonthlyReport is a user's costs for one calendar month, partitioned into
// one bucket per taxonomy category in ReportOrder. Empty buckets are present.
type MonthlyReport struct {
	UserID int64            `json:"userid"`
	Year   int              `json:"year"`
	Month  int              `json:"month"`
	Costs  []CategoryBucket `json:"costs"`
}

// UserSummary is a user's name fields alongside the lifetime total of all
// their costs.
type UserSummary struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Total     decimal.Decimal `json:"total"`
}

// MonthWindow returns the half-open UTC window [start, end) covering the
// given calendar month: start is the first instant of the month and end the
// first instant of the following month. AddDate handles month lengths and
// leap years.
func MonthWindow(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// BuildMonthlyReport partitions costs into category buckets in ReportOrder,
// preserving the given cost order within each bucket.
func BuildMonthlyReport(userID int64, year, month int, costs []Cost) *MonthlyReport {
	byCategory := make(map[Category][]CostItem, len(ReportOrder))
	for _, c := range costs {
		byCategory[c.Category] = append(byCategory[c.Category], CostItem{
			Sum:         c.Sum,
			Description: c.Description,
			Day:         c.Date.UTC().Day(),
		})
	}

	buckets := make([]CategoryBucket, 0, len(ReportOrder))
	for _, cat := range ReportOrder {
		items := byCategory[cat]
		if items == nil {
			items = []CostItem{} // empty buckets serialize as [], not null
		}
		buckets = append(buckets, CategoryBucket{string(cat): items})
	}

	return &MonthlyReport{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  buckets,
	}
}
