package income

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Income is the API response model for an income transaction.
type Income struct {
	UserID    string  `json:"userId" doc:"Owner of the income"`
	IncomeID  string  `json:"incomeId" doc:"Time ordered income id"`
	Amount    float64 `json:"amount" doc:"Positive amount"`
	Source    string  `json:"source" doc:"Income source"`
	Date      string  `json:"date" doc:"Income date, YYYY-MM-DD"`
	CreatedAt string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(i service.Income) Income {
	return Income{
		UserID:    i.UserID,
		IncomeID:  i.IncomeID,
		Amount:    i.Amount.InexactFloat64(),
		Source:    i.Source,
		Date:      i.Date.Format(service.DateLayout),
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}

// IncomeResponse is returned by create and update.
type IncomeResponse struct {
	Message string `json:"message"`
	Income  Income `json:"income"`
}
