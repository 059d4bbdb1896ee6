package income

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockIncomeService struct {
	mock.Mock
}

func (m *mockIncomeService) CreateIncome(ctx context.Context, income service.NewIncome) (*service.Income, error) {
	args := m.Called(ctx, income)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Income), args.Error(1)
}

func (m *mockIncomeService) CreateMonthlyIncome(ctx context.Context, userID string, month service.Month, amount decimal.Decimal) (*service.Income, error) {
	args := m.Called(ctx, userID, month, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Income), args.Error(1)
}

func (m *mockIncomeService) ListIncome(ctx context.Context, userID string, query service.IncomeQuery) ([]service.Income, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Income), args.Error(1)
}

func (m *mockIncomeService) UpdateIncome(ctx context.Context, userID, incomeID string, patch service.IncomePatch) (*service.Income, error) {
	args := m.Called(ctx, userID, incomeID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Income), args.Error(1)
}

func (m *mockIncomeService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	return m.Called(ctx, userID, incomeID).Error(0)
}

func newTestAPI(t *testing.T, handlers ...interface{ Register(huma.API) }) humatest.TestAPI {
	t.Helper()
	apierr.Install()
	_, api := humatest.New(t)
	for _, h := range handlers {
		h.Register(api)
	}
	return api
}

func sampleIncome() *service.Income {
	return &service.Income{
		UserID:    "user-1",
		IncomeID:  "inc-1",
		Amount:    decimal.RequireFromString("3000"),
		Source:    "Salary",
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
	}
}

func errorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}
