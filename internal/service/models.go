package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ExpenseCategories is the fixed set of expense labels.
var ExpenseCategories = []string{"Shopping", "Food", "Rent", "Utilities", "Entertainment", "Transport", "Fixed", "Other"}

// IncomeSources is the fixed set of income labels.
var IncomeSources = []string{"Salary", "Freelance", "Dividend", "Profit", "Other"}

// MonthlyIncomeSource is the source recorded for legacy monthly income entries.
const MonthlyIncomeSource = "Salary"

// Expense represents an expense in the service layer.
type Expense struct {
	UserID    string          `json:"userId"`
	ExpenseID string          `json:"expenseId"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

type NewExpense struct {
	UserID   string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Note     string
}

// ExpensePatch holds the fields supplied by a partial update.
type ExpensePatch struct {
	Amount   *decimal.Decimal
	Category *string
	Date     *time.Time
	Note     *string
}

func (p ExpensePatch) IsEmpty() bool {
	return p.Amount == nil && p.Category == nil && p.Date == nil && p.Note == nil
}

// ExpenseQuery narrows ListExpenses. The zero value lists everything.
type ExpenseQuery struct {
	Month    *Month
	Category string
}

// Income represents an income transaction in the service layer.
type Income struct {
	UserID    string          `json:"userId"`
	IncomeID  string          `json:"incomeId"`
	Amount    decimal.Decimal `json:"amount"`
	Source    string          `json:"source"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

type NewIncome struct {
	UserID string
	Amount decimal.Decimal
	Source string
	Date   time.Time
}

type IncomePatch struct {
	Amount *decimal.Decimal
	Source *string
	Date   *time.Time
}

func (p IncomePatch) IsEmpty() bool {
	return p.Amount == nil && p.Source == nil && p.Date == nil
}

type IncomeQuery struct {
	Month *Month
}

func expenseFromStorage(row *sqlconfig.Expense) Expense {
	return Expense{
		UserID:    row.UserID,
		ExpenseID: row.ExpenseID,
		Amount:    row.Amount,
		Category:  row.Category,
		Date:      truncateDay(row.Date),
		Note:      row.Note,
		CreatedAt: row.CreatedAt.UTC(),
	}
}

func incomeFromStorage(row *sqlconfig.Income) Income {
	return Income{
		UserID:    row.UserID,
		IncomeID:  row.IncomeID,
		Amount:    row.Amount,
		Source:    row.Source,
		Date:      truncateDay(row.Date),
		CreatedAt: row.CreatedAt.UTC(),
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// MaxAmount is the largest value the NUMERIC(14, 2) amount columns hold.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// normalizeAmount rounds to cents and requires a result in (0, MaxAmount].
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, validationError("amount must be greater than 0")
	}
	if rounded.GreaterThan(MaxAmount) {
		return decimal.Zero, validationError("amount must not exceed %s", MaxAmount.StringFixed(2))
	}
	return rounded, nil
}

func validateCategory(category string) error {
	if !contains(ExpenseCategories, category) {
		return validationError("invalid category %q", category)
	}
	return nil
}

func validateSource(source string) error {
	if !contains(IncomeSources, source) {
		return validationError("invalid source %q", source)
	}
	return nil
}
