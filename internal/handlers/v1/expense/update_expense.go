package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateExpenseBody is the request body for a partial update. Absent fields
// are left unchanged.
type UpdateExpenseBody struct {
	UserID   string   `json:"userId,omitempty" doc:"Owner of the expense"`
	Amount   *float64 `json:"amount,omitempty" doc:"New positive amount"`
	Category *string  `json:"category,omitempty" doc:"New category"`
	Date     *string  `json:"date,omitempty" doc:"New date, YYYY-MM-DD"`
	Note     *string  `json:"note,omitempty" doc:"New note, may be empty"`
}

type UpdateExpenseInput struct {
	ExpenseID string `path:"expenseId" doc:"Expense to update"`
	Body      UpdateExpenseBody
}

type UpdateExpenseResponse struct {
	Message string  `json:"message"`
	Expense Expense `json:"expense"`
}

type UpdateExpenseOutput struct {
	Body UpdateExpenseResponse
}

// expenseUpdater is the interface for updating expenses.
type expenseUpdater interface {
	UpdateExpense(ctx context.Context, userID, expenseID string, patch service.ExpensePatch) (*service.Expense, error)
}

// UpdateExpenseHandler handles PUT /v1/expenses/{expenseId}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/v1/expenses/{expenseId}",
		Summary:     "Update expense",
		Description: "Changes only the supplied fields of an expense and returns the updated record.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func parseUpdateExpenseInput(input *UpdateExpenseInput) (service.ExpensePatch, error) {
	if input.Body.UserID == "" || input.ExpenseID == "" {
		return service.ExpensePatch{}, huma.NewError(http.StatusBadRequest, "userId and expenseId are required")
	}

	patch := service.ExpensePatch{
		Category: input.Body.Category,
		Note:     input.Body.Note,
	}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		patch.Amount = &amount
	}
	if input.Body.Date != nil {
		date, err := service.ParseDate(*input.Body.Date)
		if err != nil {
			return service.ExpensePatch{}, huma.NewError(http.StatusBadRequest, err.Error())
		}
		patch.Date = &date
	}
	return patch, nil
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)
	patch, err := parseUpdateExpenseInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", input.Body.UserID)
	logData.AddData("expenseId", input.ExpenseID)

	stopTimer := logData.AddTiming("updateExpenseMs")
	updated, err := h.ExpenseService.UpdateExpense(ctx, input.Body.UserID, input.ExpenseID, patch)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Expense not found", "Failed to update expense")
	}

	return &UpdateExpenseOutput{Body: UpdateExpenseResponse{
		Message: "Expense updated successfully",
		Expense: fromService(*updated),
	}}, nil
}
