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

// UpdateIncomeBody is the request body for a partial update.
type UpdateIncomeBody struct {
	UserID string   `json:"userId,omitempty" doc:"Owner of the income"`
	Amount *float64 `json:"amount,omitempty" doc:"New positive amount"`
	Source *string  `json:"source,omitempty" doc:"New source"`
	Date   *string  `json:"date,omitempty" doc:"New date, YYYY-MM-DD"`
}

type UpdateIncomeInput struct {
	IncomeID string `path:"incomeId" doc:"Income to update"`
	Body     UpdateIncomeBody
}

type UpdateIncomeOutput struct {
	Body IncomeResponse
}

type incomeUpdater interface {
	UpdateIncome(ctx context.Context, userID, incomeID string, patch service.IncomePatch) (*service.Income, error)
}

// UpdateIncomeHandler handles PUT /v1/income/{incomeId}.
type UpdateIncomeHandler struct {
	IncomeService incomeUpdater
}

func NewUpdateIncomeHandler(svc incomeUpdater) *UpdateIncomeHandler {
	return &UpdateIncomeHandler{IncomeService: svc}
}

func (h *UpdateIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-income",
		Method:      http.MethodPut,
		Path:        "/v1/income/{incomeId}",
		Summary:     "Update income",
		Description: "Changes only the supplied fields of an income transaction.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func parseUpdateIncomeInput(input *UpdateIncomeInput) (service.IncomePatch, error) {
	if input.Body.UserID == "" || input.IncomeID == "" {
		return service.IncomePatch{}, huma.NewError(http.StatusBadRequest, "userId and incomeId are required")
	}

	patch := service.IncomePatch{Source: input.Body.Source}
	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		patch.Amount = &amount
	}
	if input.Body.Date != nil {
		date, err := service.ParseDate(*input.Body.Date)
		if err != nil {
			return service.IncomePatch{}, huma.NewError(http.StatusBadRequest, err.Error())
		}
		patch.Date = &date
	}
	return patch, nil
}

func (h *UpdateIncomeHandler) handle(ctx context.Context, input *UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	logData := logging.GetLogData(ctx)
	patch, err := parseUpdateIncomeInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", input.Body.UserID)
	logData.AddData("incomeId", input.IncomeID)

	stopTimer := logData.AddTiming("updateIncomeMs")
	updated, err := h.IncomeService.UpdateIncome(ctx, input.Body.UserID, input.IncomeID, patch)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Income not found", "Failed to update income")
	}

	return &UpdateIncomeOutput{Body: IncomeResponse{
		Message: "Income updated successfully",
		Income:  fromService(*updated),
	}}, nil
}
