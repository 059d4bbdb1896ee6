package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListExpensesInput is the Huma input for listing expenses.
type ListExpensesInput struct {
	UserID   string `query:"userId" doc:"Owner of the expenses"`
	Month    string `query:"month" doc:"Only expenses in this month, YYYY-MM"`
	Category string `query:"category" doc:"Only expenses in this category"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses" doc:"Expenses, newest date first"`
}

type ListExpensesOutput struct {
	Body ListExpensesResponse
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context, userID string, query service.ExpenseQuery) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /v1/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expenses",
		Summary:     "List expenses",
		Description: "Returns a user's expenses, optionally narrowed to a month and category.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func parseListExpensesInput(input *ListExpensesInput) (string, service.ExpenseQuery, error) {
	if input.UserID == "" {
		return "", service.ExpenseQuery{}, huma.NewError(http.StatusBadRequest, "userId is required")
	}

	query := service.ExpenseQuery{Category: input.Category}
	if input.Month != "" {
		month, err := service.ParseMonth(input.Month)
		if err != nil {
			return "", service.ExpenseQuery{}, huma.NewError(http.StatusBadRequest, err.Error())
		}
		query.Month = &month
	}
	return input.UserID, query, nil
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, query, err := parseListExpensesInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", userID)

	stopTimer := logData.AddTiming("listExpensesMs")
	expenses, err := h.ExpenseService.ListExpenses(ctx, userID, query)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Expense not found", apierr.InternalServerError)
	}
	logData.AddData("expenseCount", len(expenses))

	resp := ListExpensesResponse{Expenses: make([]Expense, len(expenses))}
	for i, e := range expenses {
		resp.Expenses[i] = fromService(e)
	}
	return &ListExpensesOutput{Body: resp}, nil
}
