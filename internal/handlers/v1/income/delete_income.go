package income

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type DeleteIncomeInput struct {
	IncomeID string `path:"incomeId" doc:"Income to delete"`
	UserID   string `query:"userId" doc:"Owner of the income"`
}

// DeleteIncomeResponse carries only the outcome; there is no record to echo.
type DeleteIncomeResponse struct {
	Message string `json:"message" doc:"Outcome of the operation"`
}

type DeleteIncomeOutput struct {
	Body DeleteIncomeResponse
}

type incomeDeleter interface {
	DeleteIncome(ctx context.Context, userID, incomeID string) error
}

// DeleteIncomeHandler handles DELETE /v1/income/{incomeId}.
type DeleteIncomeHandler struct {
	IncomeService incomeDeleter
}

func NewDeleteIncomeHandler(svc incomeDeleter) *DeleteIncomeHandler {
	return &DeleteIncomeHandler{IncomeService: svc}
}

func (h *DeleteIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-income",
		Method:      http.MethodDelete,
		Path:        "/v1/income/{incomeId}",
		Summary:     "Delete income",
		Description: "Deletes an income transaction. Deleting a missing record succeeds.",
		Tags:        []string{"Income"},
	}, h.handle)
}

func (h *DeleteIncomeHandler) handle(ctx context.Context, input *DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	logData := logging.GetLogData(ctx)
	if input.UserID == "" || input.IncomeID == "" {
		return nil, huma.NewError(http.StatusBadRequest, "userId and incomeId are required")
	}
	logData.AddData("userId", input.UserID)
	logData.AddData("incomeId", input.IncomeID)

	stopTimer := logData.AddTiming("deleteIncomeMs")
	err := h.IncomeService.DeleteIncome(ctx, input.UserID, input.IncomeID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Income not found", "Failed to delete income")
	}

	return &DeleteIncomeOutput{Body: DeleteIncomeResponse{Message: "Income deleted successfully"}}, nil
}
