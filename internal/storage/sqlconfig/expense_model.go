package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expenses row.
type Expense struct {
	UserID    string          `db:"user_id"`
	ExpenseID string          `db:"expense_id"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	Date      time.Time       `db:"expense_date"`
	Note      string          `db:"note"`
	CreatedAt time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for inserting an expense. Ids and timestamps are
// assigned by the caller.
type ExpenseCreate struct {
	UserID    string
	ExpenseID string
	Amount    decimal.Decimal
	Category  string
	Date      time.Time
	Note      string
	CreatedAt time.Time
}

// ExpenseUpdate holds the columns to change. Nil fields are left untouched.
type ExpenseUpdate struct {
	Amount   *decimal.Decimal
	Category *string
	Date     *time.Time
	Note     *string
}

func (u *ExpenseUpdate) IsEmpty() bool {
	return u == nil || (u.Amount == nil && u.Category == nil && u.Date == nil && u.Note == nil)
}

// ExpenseFilter narrows ListByUser. A nil filter returns every expense of the user.
type ExpenseFilter struct {
	Dates    DateRange
	Category string
}

// IExpenseTable defines the storage operations on expenses.
//
//go:generate mockery --name IExpenseTable --inpackage --filename mock_IExpenseTable.go --with-expecter
type IExpenseTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	ListByUser(ctx context.Context, userID string, filter *ExpenseFilter) ([]*Expense, error)
	Update(ctx context.Context, userID, expenseID string, update *ExpenseUpdate) (*Expense, error)
	Delete(ctx context.Context, userID, expenseID string) error
}
