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

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	UserID   string  `json:"userId,omitempty" doc:"Owner of the expense"`
	Amount   float64 `json:"amount,omitempty" doc:"Positive amount"`
	Category string  `json:"category,omitempty" doc:"One of Shopping, Food, Rent, Utilities, Entertainment, Transport, Fixed, Other"`
	Date     string  `json:"date,omitempty" doc:"Expense date, YYYY-MM-DD (RFC3339 accepted)"`
	Note     string  `json:"note,omitempty" doc:"Free text note"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

type CreateExpenseResponse struct {
	Message string  `json:"message"`
	Expense Expense `json:"expense"`
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Status int
	Body   CreateExpenseResponse
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	CreateExpense(ctx context.Context, expense service.NewExpense) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /v1/expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expenses",
		Summary:       "Create expense",
		Description:   "Records a new expense for a user.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateExpenseInput checks identifiers and converts the wire types.
// Amount and category rules are enforced by the service.
func parseCreateExpenseInput(input *CreateExpenseInput) (service.NewExpense, error) {
	if input.Body.UserID == "" {
		return service.NewExpense{}, huma.NewError(http.StatusBadRequest, "userId is required")
	}
	if input.Body.Date == "" {
		return service.NewExpense{}, huma.NewError(http.StatusBadRequest, "date is required")
	}
	date, err := service.ParseDate(input.Body.Date)
	if err != nil {
		return service.NewExpense{}, huma.NewError(http.StatusBadRequest, err.Error())
	}

	return service.NewExpense{
		UserID:   input.Body.UserID,
		Amount:   decimal.NewFromFloat(input.Body.Amount),
		Category: input.Body.Category,
		Date:     date,
		Note:     input.Body.Note,
	}, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)
	newExpense, err := parseCreateExpenseInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", newExpense.UserID)

	stopTimer := logData.AddTiming("createExpenseMs")
	created, err := h.ExpenseService.CreateExpense(ctx, newExpense)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Expense not found", apierr.InternalServerError)
	}

	return &CreateExpenseOutput{
		Status: http.StatusCreated,
		Body: CreateExpenseResponse{
			Message: "Expense created successfully",
			Expense: fromService(*created),
		},
	}, nil
}
