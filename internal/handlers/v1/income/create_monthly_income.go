package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateMonthlyIncomeBody is the older monthly aggregate shape. It is stored
// as one Salary transaction on the first day of the month.
type CreateMonthlyIncomeBody struct {
	UserID string  `json:"userId,omitempty" doc:"Owner of the income"`
	Month  string  `json:"month,omitempty" doc:"Month, YYYY-MM"`
	Income float64 `json:"income,omitempty" doc:"Positive amount for the month"`
}

type CreateMonthlyIncomeInput struct {
	Body CreateMonthlyIncomeBody
}

type CreateMonthlyIncomeOutput struct {
	Status int
	Body   IncomeResponse
}

type monthlyIncomeCreator interface {
	CreateMonthlyIncome(ctx context.Context, userID string, month service.Month, amount decimal.Decimal) (*service.Income, error)
}

// CreateMonthlyIncomeHandler handles POST /v1/income/monthly.
type CreateMonthlyIncomeHandler struct {
	IncomeService monthlyIncomeCreator
}

func NewCreateMonthlyIncomeHandler(svc monthlyIncomeCreator) *CreateMonthlyIncomeHandler {
	return &CreateMonthlyIncomeHandler{IncomeService: svc}
}

func (h *CreateMonthlyIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-monthly-income",
		Method:        http.MethodPost,
		Path:          "/v1/income/monthly",
		Summary:       "Create monthly income",
		Description:   "Records a month's income as a Salary transaction dated the first of the month.",
		Tags:          []string{"Income"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateMonthlyIncomeInput(input *CreateMonthlyIncomeInput) (string, service.Month, decimal.Decimal, error) {
	if input.Body.UserID == "" {
		return "", service.Month{}, decimal.Zero, huma.NewError(http.StatusBadRequest, "userId is required")
	}
	if input.Body.Month == "" {
		return "", service.Month{}, decimal.Zero, huma.NewError(http.StatusBadRequest, "month is required")
	}
	month, err := service.ParseMonth(input.Body.Month)
	if err != nil {
		return "", service.Month{}, decimal.Zero, huma.NewError(http.StatusBadRequest, err.Error())
	}
	return input.Body.UserID, month, decimal.NewFromFloat(input.Body.Income), nil
}

func (h *CreateMonthlyIncomeHandler) handle(ctx context.Context, input *CreateMonthlyIncomeInput) (*CreateMonthlyIncomeOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, month, amount, err := parseCreateMonthlyIncomeInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", userID)
	logData.AddData("month", month.String())

	stopTimer := logData.AddTiming("createIncomeMs")
	created, err := h.IncomeService.CreateMonthlyIncome(ctx, userID, month, amount)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Income not found", apierr.InternalServerError)
	}

	return &CreateMonthlyIncomeOutput{
		Status: http.StatusCreated,
		Body: IncomeResponse{
			Message: "Income created successfully",
			Income:  fromService(*created),
		},
	}, nil
}
