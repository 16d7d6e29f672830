// internal/api/handler/cost.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/DanielA2212/ServerSideProject/internal/api/types"
	"github.com/DanielA2212/ServerSideProject/internal/service"
	"github.com/DanielA2212/ServerSideProject/internal/util" // For custom errors
)

// DefaultTimeout is the per-request timeout applied by the router middleware.
const DefaultTimeout = 30 * time.Second

// dateLayout is the calendar-date form accepted for cost occurrence dates;
// full RFC 3339 timestamps are accepted as well.
const dateLayout = "2006-01-02"

// teamMembers is the static list served by the about endpoint.
var teamMembers = []types.TeamMember{
	{FirstName: "Daniel", LastName: "Amar"},
	{FirstName: "Omer", LastName: "Katz"},
}

// CostHandler handles HTTP requests related to cost operations.
type CostHandler struct {
	service service.CostService
	logger  *slog.Logger
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(svc service.CostService, logger *slog.Logger) *CostHandler {
	return &CostHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *CostHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *CostHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrUserNotFound), util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = util.ErrUserNotFound.Error()
	case util.IsError(err, util.ErrInvalidInput),
		util.IsError(err, util.ErrInvalidCategory),
		util.IsError(err, util.ErrInvalidDescription),
		util.IsError(err, util.ErrInvalidSum),
		util.IsError(err, util.ErrInvalidYearFormat),
		util.IsError(err, util.ErrInvalidMonthFormat),
		util.IsError(err, util.ErrInvalidMonth),
		util.IsError(err, util.ErrInvalidYearRange),
		util.IsError(err, util.ErrMissingID):
		statusCode = http.StatusBadRequest
		message = err.Error() // Use the error message directly for invalid input
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// AddCostRequest represents the request body for adding a cost.
// Sum is kept raw so both JSON numbers and numeric strings coerce, and so a
// non-numeric value can be reported against the sum field specifically.
type AddCostRequest struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	UserID      json.Number     `json:"userid"`
	Sum         json.RawMessage `json:"sum"`
	Date        string          `json:"date,omitempty"`
}

// AddCost handles the add-cost request.
// POST /costs
func (h *CostHandler) AddCost(w http.ResponseWriter, r *http.Request) {
	var req AddCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Name the offending field when the body is valid JSON of the wrong shape.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			h.respondWithError(w, fmt.Errorf("%w: invalid value for %q", util.ErrInvalidInput, typeErr.Field))
			return
		}
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	userID, err := req.UserID.Int64()
	if err != nil {
		// An id that is not a positive integer cannot resolve to any user.
		h.respondWithError(w, util.ErrUserNotFound)
		return
	}

	sum, err := decimal.NewFromString(strings.Trim(string(req.Sum), `"`))
	if err != nil {
		h.respondWithError(w, fmt.Errorf("%w: sum must be a number", util.ErrInvalidInput))
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			h.respondWithError(w, fmt.Errorf("%w: date must be a valid calendar date", util.ErrInvalidInput))
			return
		}
		date = &parsed
	}

	cost, err := h.service.AddCost(r.Context(), userID, req.Description, req.Category, sum, date)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, types.Envelope{
		Message: "cost added successfully",
		Data:    cost,
	})
}

// Report handles the monthly report request.
// GET /report?id=&year=&month=
func (h *CostHandler) Report(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		h.respondWithError(w, util.ErrMissingID)
		return
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrUserNotFound)
		return
	}

	report, err := h.service.MonthlyReport(r.Context(), userID, r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, report)
}

// UserSummary handles the user summary request.
// GET /users/{id}
func (h *CostHandler) UserSummary(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrUserNotFound)
		return
	}

	summary, err := h.service.UserSummary(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.Envelope{
		Message: "user summary",
		Data:    summary,
	})
}

// About handles the team info request.
// GET /about
func (h *CostHandler) About(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, teamMembers)
}

// parseDate accepts a calendar date (YYYY-MM-DD) or a full RFC 3339
// timestamp, normalized to UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
