package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type DeleteExpenseInput struct {
	ExpenseID string `path:"expenseId" doc:"Expense to delete"`
	UserID    string `query:"userId" doc:"Owner of the expense"`
}

// DeleteExpenseResponse carries only the outcome; there is no record to echo.
type DeleteExpenseResponse struct {
	Message string `json:"message" doc:"Outcome of the operation"`
}

type DeleteExpenseOutput struct {
	Body DeleteExpenseResponse
}

// expenseDeleter is the interface for deleting expenses.
type expenseDeleter interface {
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// DeleteExpenseHandler handles DELETE /v1/expenses/{expenseId}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/v1/expenses/{expenseId}",
		Summary:     "Delete expense",
		Description: "Deletes an expense. Deleting a missing expense succeeds.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	logData := logging.GetLogData(ctx)
	if input.UserID == "" || input.ExpenseID == "" {
		return nil, huma.NewError(http.StatusBadRequest, "userId and expenseId are required")
	}
	logData.AddData("userId", input.UserID)
	logData.AddData("expenseId", input.ExpenseID)

	stopTimer := logData.AddTiming("deleteExpenseMs")
	err := h.ExpenseService.DeleteExpense(ctx, input.UserID, input.ExpenseID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Expense not found", "Failed to delete expense")
	}

	return &DeleteExpenseOutput{Body: DeleteExpenseResponse{Message: "Expense deleted successfully"}}, nil
}
