package expense

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockExpenseService implements every expense consumer interface.
type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, expense service.NewExpense) (*service.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, userID string, query service.ExpenseQuery) ([]service.Expense, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, patch service.ExpensePatch) (*service.Expense, error) {
	args := m.Called(ctx, userID, expenseID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

type registerer interface {
	Register(api huma.API)
}

// newTestAPI registers the handlers against a humatest API and returns it.
func newTestAPI(t *testing.T, handlers ...registerer) humatest.TestAPI {
	t.Helper()
	apierr.Install()
	_, api := humatest.New(t)
	for _, h := range handlers {
		h.Register(api)
	}
	return api
}

func sampleExpense() *service.Expense {
	return &service.Expense{
		UserID:    "user-1",
		ExpenseID: "exp-1",
		Amount:    decimal.RequireFromString("12.50"),
		Category:  "Food",
		Date:      time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Note:      "Lunch",
		CreatedAt: time.Date(2024, 5, 10, 13, 4, 5, 0, time.UTC),
	}
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v), resp.Body.String())
}

func errorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	return body.Error
}

func dump(v interface{}) string {
	return spew.Sdump(v)
}
