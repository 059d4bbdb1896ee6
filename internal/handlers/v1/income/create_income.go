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

// CreateIncomeBody is the request body for recording income.
type CreateIncomeBody struct {
	UserID string  `json:"userId,omitempty" doc:"Owner of the income"`
	Amount float64 `json:"amount,omitempty" doc:"Positive amount"`
	Source string  `json:"source,omitempty" doc:"One of Salary, Freelance, Dividend, Profit, Other"`
	Date   string  `json:"date,omitempty" doc:"Income date, YYYY-MM-DD (RFC3339 accepted)"`
}

type CreateIncomeInput struct {
	Body CreateIncomeBody
}

type CreateIncomeOutput struct {
	Status int
	Body   IncomeResponse
}

// incomeCreator is the interface for recording income.
type incomeCreator interface {
	CreateIncome(ctx context.Context, income service.NewIncome) (*service.Income, error)
}

// CreateIncomeHandler handles POST /v1/income.
type CreateIncomeHandler struct {
	IncomeService incomeCreator
}

func NewCreateIncomeHandler(svc incomeCreator) *CreateIncomeHandler {
	return &CreateIncomeHandler{IncomeService: svc}
}

func (h *CreateIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-income",
		Method:        http.MethodPost,
		Path:          "/v1/income",
		Summary:       "Create income",
		Description:   "Records an income transaction for a user.",
		Tags:          []string{"Income"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateIncomeInput(input *CreateIncomeInput) (service.NewIncome, error) {
	if input.Body.UserID == "" {
		return service.NewIncome{}, huma.NewError(http.StatusBadRequest, "userId is required")
	}
	if input.Body.Date == "" {
		return service.NewIncome{}, huma.NewError(http.StatusBadRequest, "date is required")
	}
	date, err := service.ParseDate(input.Body.Date)
	if err != nil {
		return service.NewIncome{}, huma.NewError(http.StatusBadRequest, err.Error())
	}

	return service.NewIncome{
		UserID: input.Body.UserID,
		Amount: decimal.NewFromFloat(input.Body.Amount),
		Source: input.Body.Source,
		Date:   date,
	}, nil
}

func (h *CreateIncomeHandler) handle(ctx context.Context, input *CreateIncomeInput) (*CreateIncomeOutput, error) {
	logData := logging.GetLogData(ctx)
	newIncome, err := parseCreateIncomeInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", newIncome.UserID)

	stopTimer := logData.AddTiming("createIncomeMs")
	created, err := h.IncomeService.CreateIncome(ctx, newIncome)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Income not found", apierr.InternalServerError)
	}

	return &CreateIncomeOutput{
		Status: http.StatusCreated,
		Body: IncomeResponse{
			Message: "Income created successfully",
			Income:  fromService(*created),
		},
	}, nil
}
