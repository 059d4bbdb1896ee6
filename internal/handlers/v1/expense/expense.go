package expense

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Expense is the API response model for an expense.
type Expense struct {
	UserID    string  `json:"userId" doc:"Owner of the expense"`
	ExpenseID string  `json:"expenseId" doc:"Time ordered expense id"`
	Amount    float64 `json:"amount" doc:"Positive amount"`
	Category  string  `json:"category" doc:"Expense category"`
	Date      string  `json:"date" doc:"Expense date, YYYY-MM-DD"`
	Note      string  `json:"note" doc:"Free text note"`
	CreatedAt string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(e service.Expense) Expense {
	return Expense{
		UserID:    e.UserID,
		ExpenseID: e.ExpenseID,
		Amount:    e.Amount.InexactFloat64(),
		Category:  e.Category,
		Date:      e.Date.Format(service.DateLayout),
		Note:      e.Note,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
