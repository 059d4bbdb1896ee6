package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierr"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type GetSummaryInput struct {
	UserID string `query:"userId" doc:"Owner of the records"`
	Month  string `query:"month" doc:"Month to summarize, YYYY-MM. Defaults to the current month"`
}

type Breakdown struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type DailyTotal struct {
	Date   string  `json:"date" doc:"YYYY-MM-DD"`
	Amount float64 `json:"amount"`
}

// SummaryResponse is the monthly aggregate for one user.
type SummaryResponse struct {
	UserID            string       `json:"userId"`
	Month             string       `json:"month" doc:"YYYY-MM"`
	TotalExpenses     float64      `json:"totalExpenses"`
	ExpenseCount      int          `json:"expenseCount"`
	TotalIncome       float64      `json:"totalIncome"`
	IncomeCount       int          `json:"incomeCount"`
	AverageIncome     float64      `json:"averageIncome"`
	Balance           float64      `json:"balance" doc:"Income minus expenses, may be negative"`
	TopCategory       string       `json:"topCategory" doc:"Largest expense category, N/A when there are no expenses"`
	CategoryBreakdown []Breakdown  `json:"categoryBreakdown" doc:"Sorted by total, largest first"`
	SourceBreakdown   []Breakdown  `json:"sourceBreakdown" doc:"Sorted by total, largest first"`
	Last7Days         []DailyTotal `json:"last7Days" doc:"Expense totals for the last seven days, oldest first"`
}

type GetSummaryOutput struct {
	Body SummaryResponse
}

type summarizer interface {
	MonthlySummary(ctx context.Context, userID string, month *service.Month) (*service.Summary, error)
}

// GetSummaryHandler handles GET /v1/summary.
type GetSummaryHandler struct {
	SummaryService summarizer
}

func NewGetSummaryHandler(svc summarizer) *GetSummaryHandler {
	return &GetSummaryHandler{SummaryService: svc}
}

func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Monthly summary",
		Description: "Aggregates a user's expenses and income for one month.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func parseGetSummaryInput(input *GetSummaryInput) (*service.Month, error) {
	if input.UserID == "" {
		return nil, huma.NewError(http.StatusBadRequest, "userId is required")
	}
	if input.Month == "" {
		return nil, nil
	}
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, err.Error())
	}
	return &month, nil
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	month, err := parseGetSummaryInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("userId", input.UserID)

	summary, err := h.SummaryService.MonthlySummary(ctx, input.UserID, month)
	if err != nil {
		return nil, apierr.FromService(ctx, err, "Summary not found", "Failed to build summary")
	}
	return &GetSummaryOutput{Body: fromService(summary)}, nil
}

func fromService(s *service.Summary) SummaryResponse {
	resp := SummaryResponse{
		UserID:            s.UserID,
		Month:             s.Month.String(),
		TotalExpenses:     s.TotalExpenses.InexactFloat64(),
		ExpenseCount:      s.ExpenseCount,
		TotalIncome:       s.TotalIncome.InexactFloat64(),
		IncomeCount:       s.IncomeCount,
		AverageIncome:     s.AverageIncome.InexactFloat64(),
		Balance:           s.Balance.InexactFloat64(),
		TopCategory:       s.TopCategory,
		CategoryBreakdown: breakdown(s.CategoryBreakdown),
		SourceBreakdown:   breakdown(s.SourceBreakdown),
		Last7Days:         make([]DailyTotal, len(s.Last7Days)),
	}
	for i, d := range s.Last7Days {
		resp.Last7Days[i] = DailyTotal{Date: d.Date.Format(service.DateLayout), Amount: d.Amount.InexactFloat64()}
	}
	return resp
}

func breakdown(in []service.Breakdown) []Breakdown {
	out := make([]Breakdown, len(in))
	for i, b := range in {
		out[i] = Breakdown{Name: b.Name, Total: b.Total.InexactFloat64(), Count: b.Count}
	}
	return out
}
