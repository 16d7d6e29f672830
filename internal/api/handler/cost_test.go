// internal/api/handler/cost_test.go
package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanielA2212/ServerSideProject/internal/api"
	"github.com/DanielA2212/ServerSideProject/internal/api/handler"
	"github.com/DanielA2212/ServerSideProject/internal/domain"
	"github.com/DanielA2212/ServerSideProject/internal/util"
)

func TestMain(m *testing.M) {
	// Match production serialization: sums are JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// MockCostService is a mock implementation of service.CostService.
type MockCostService struct {
	mock.Mock
}

func (m *MockCostService) AddCost(ctx context.Context, userID int64, description, category string, sum decimal.Decimal, date *time.Time) (*domain.Cost, error) {
	args := m.Called(ctx, userID, description, category, sum, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cost), args.Error(1)
}

func (m *MockCostService) MonthlyReport(ctx context.Context, userID int64, year, month string) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

func (m *MockCostService) UserSummary(ctx context.Context, userID int64) (*domain.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSummary), args.Error(1)
}

func newTestServer(svc *MockCostService) *httptest.Server {
	h := handler.NewCostHandler(svc, util.GetLogger())
	return httptest.NewServer(api.NewRouter(h, util.GetLogger()))
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	defer res.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func TestAddCostEndpoint(t *testing.T) {
	svc := new(MockCostService)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.On("AddCost", mock.Anything, int64(123123), "Lunch", "food", mock.Anything, mock.AnythingOfType("*time.Time")).
		Return(&domain.Cost{
			ID:          1,
			UserID:      123123,
			Description: "Lunch",
			Category:    domain.CategoryFood,
			Sum:         decimal.NewFromFloat(15.5),
			Date:        date,
		}, nil)

	srv := newTestServer(svc)
	defer srv.Close()

	payload := `{"description":"Lunch","category":"food","userid":123123,"sum":15.5,"date":"2024-06-01"}`
	res, err := http.Post(srv.URL+"/costs", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "cost added successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.InDelta(t, 15.5, data["sum"], 0.0001)
	assert.Equal(t, "food", data["category"])
	svc.AssertExpectations(t)
}

func TestAddCostEndpointNonNumericSum(t *testing.T) {
	svc := new(MockCostService)
	srv := newTestServer(svc)
	defer srv.Close()

	payload := `{"description":"Lunch","category":"food","userid":1,"sum":"abc"}`
	res, err := http.Post(srv.URL+"/costs", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Contains(t, body["error"], "sum")
	svc.AssertNotCalled(t, "AddCost", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddCostEndpointMissingSum(t *testing.T) {
	svc := new(MockCostService)
	srv := newTestServer(svc)
	defer srv.Close()

	payload := `{"description":"Lunch","category":"food","userid":1}`
	res, err := http.Post(srv.URL+"/costs", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Contains(t, body["error"], "sum")
}

func TestAddCostEndpointBadDate(t *testing.T) {
	svc := new(MockCostService)
	srv := newTestServer(svc)
	defer srv.Close()

	payload := `{"description":"Lunch","category":"food","userid":1,"sum":10,"date":"June 1st"}`
	res, err := http.Post(srv.URL+"/costs", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Contains(t, body["error"], "date")
}

func TestAddCostEndpointUserNotFound(t *testing.T) {
	svc := new(MockCostService)
	svc.On("AddCost", mock.Anything, int64(9999), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, util.ErrUserNotFound)

	srv := newTestServer(svc)
	defer srv.Close()

	payload := `{"description":"Lunch","category":"food","userid":9999,"sum":10}`
	res, err := http.Post(srv.URL+"/costs", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "user not found", body["error"])
}

func TestReportEndpoint(t *testing.T) {
	svc := new(MockCostService)
	svc.On("MonthlyReport", mock.Anything, int64(123123), "2024", "6").
		Return(domain.BuildMonthlyReport(123123, 2024, 6, []domain.Cost{
			{Description: "Lunch", Category: domain.CategoryFood, Sum: decimal.NewFromFloat(15.5), Date: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		}), nil)

	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/report?id=123123&year=2024&month=6")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.EqualValues(t, 123123, body["userid"])
	assert.EqualValues(t, 2024, body["year"])
	assert.EqualValues(t, 6, body["month"])

	costs := body["costs"].([]interface{})
	require.Len(t, costs, 5)
	food := costs[0].(map[string]interface{})["food"].([]interface{})
	require.Len(t, food, 1)
	item := food[0].(map[string]interface{})
	assert.InDelta(t, 15.5, item["sum"], 0.0001)
	assert.Equal(t, "Lunch", item["description"])
	assert.EqualValues(t, 1, item["day"])
}

func TestReportEndpointMissingID(t *testing.T) {
	svc := new(MockCostService)
	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/report?year=2024&month=6")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "id is required", body["error"])
	svc.AssertNotCalled(t, "MonthlyReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportEndpointNonNumericID(t *testing.T) {
	svc := new(MockCostService)
	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/report?id=abc&year=2024&month=6")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestReportEndpointInvalidMonth(t *testing.T) {
	svc := new(MockCostService)
	svc.On("MonthlyReport", mock.Anything, int64(1), "2024", "13").Return(nil, util.ErrInvalidMonth)

	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/report?id=1&year=2024&month=13")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "month must be between 1 and 12", body["error"])
}

func TestUserSummaryEndpoint(t *testing.T) {
	svc := new(MockCostService)
	svc.On("UserSummary", mock.Anything, int64(123123)).
		Return(&domain.UserSummary{ID: 123123, FirstName: "Mosh", LastName: "Israeli", Total: decimal.NewFromFloat(15.5)}, nil)

	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/users/123123")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 123123, data["id"])
	assert.Equal(t, "Mosh", data["first_name"])
	assert.Equal(t, "Israeli", data["last_name"])
	assert.InDelta(t, 15.5, data["total"], 0.0001)
}

func TestUserSummaryEndpointNotFound(t *testing.T) {
	svc := new(MockCostService)
	svc.On("UserSummary", mock.Anything, int64(9999)).Return(nil, util.ErrUserNotFound)

	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/users/9999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAboutEndpoint(t *testing.T) {
	svc := new(MockCostService)
	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/about")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	defer res.Body.Close()
	var team []map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&team))
	require.NotEmpty(t, team)
	for _, member := range team {
		assert.NotEmpty(t, member["first_name"])
		assert.NotEmpty(t, member["last_name"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	svc := new(MockCostService)
	srv := newTestServer(svc)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
