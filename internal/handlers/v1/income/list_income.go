package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListIncomeInput struct {
	UserID string `query:"userId" doc:"Owner of the income"`
	Month  string `query:"month" doc:"Only income in this month, YYYY-MM"`
}

type ListIncomeResponse struct {
	Income []Income `json:"income" doc:"Income transactions, newest date first"`
}

type ListIncomeOutput struct {
	Body ListIncomeResponse
}

type incomeLister interface {
	ListIncome(ctx context.Context, userID string, query service.IncomeQuery) ([]service.Income, error)
}

// ListIncomeHandler handles GET /v1/income.
type ListIncomeHandler struct {
	IncomeService incomeLister
}

func NewListIncomeHandler(svc incomeLister) *ListIncomeHandler {
	return &ListIncomeHandler{IncomeService: svc}
}

func (h *ListIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-income",
		Method:      http.MethodGet,
		Path:        "/v1/income",
		Summary:     "List income",
		Description: "Returns a user's income transactions, optionally narrowed to a month.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func parseListIncomeInput(input *ListIncomeInput) (string, service.IncomeQuery, error) {
	if input.UserID == "" {
		return "", service.IncomeQuery{}, huma.NewError(http.StatusBadRequest, "userId is required")
	}

	var query service.IncomeQuery
	if input.Month != "" {
		month, err := service.ParseMonth(input.Month)
		if err != nil {
			return "", service.IncomeQuery{}, huma.NewError(http.StatusBadRequest, err.Error())
		}
		query.Month = &month
	}
	return input.UserID, query, nil
}

func (h *ListIncomeHandler) handle(ctx context.Context, input *ListIncomeInput) (*ListIncomeOutput, error) {
	logData := logging.GetLogData(ctx)
	userID, query, err := parseListIncomeInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", userID)

	stopTimer := logData.AddTiming("listIncomeMs")
	income, err := h.IncomeService.ListIncome(ctx, userID, query)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Income not found", apierr.InternalServerError)
	}
	logData.AddData("incomeCount", len(income))

	resp := ListIncomeResponse{Income: make([]Income, len(income))}
	for i, inc := range income {
		resp.Income[i] = fromService(inc)
	}
	return &ListIncomeOutput{Body: resp}, nil
}
