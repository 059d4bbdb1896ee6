package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Income represents an incomes row.
type Income struct {
	UserID    string          `db:"user_id"`
	IncomeID  string          `db:"income_id"`
	Amount    decimal.Decimal `db:"amount"`
	Source    string          `db:"source"`
	Date      time.Time       `db:"income_date"`
	CreatedAt time.Time       `db:"created_at"`
}

type IncomeCreate struct {
	UserID    string
	IncomeID  string
	Amount    decimal.Decimal
	Source    string
	Date      time.Time
	CreatedAt time.Time
}

// IncomeUpdate holds the columns to change. Nil fields are left untouched.
type IncomeUpdate struct {
	Amount *decimal.Decimal
	Source *string
	Date   *time.Time
}

func (u *IncomeUpdate) IsEmpty() bool {
	return u == nil || (u.Amount == nil && u.Source == nil && u.Date == nil)
}

type IncomeFilter struct {
	Dates DateRange
}

// IIncomeTable defines the storage operations on incomes.
//
//go:generate mockery --name IIncomeTable --inpackage --filename mock_IIncomeTable.go --with-expecter
type IIncomeTable interface {
	Insert(ctx context.Context, create *IncomeCreate) (*Income, error)
	ListByUser(ctx context.Context, userID string, filter *IncomeFilter) ([]*Income, error)
	Update(ctx context.Context, userID, incomeID string, update *IncomeUpdate) (*Income, error)
	Delete(ctx context.Context, userID, incomeID string) error
}
