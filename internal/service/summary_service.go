package service

import (
	"context"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

const (
	NoTopCategory = "N/A"
	recentDays    = 7
)

type expenseLister interface {
	ListExpenses(ctx context.Context, userID string, query ExpenseQuery) ([]Expense, error)
}

type incomeLister interface {
	ListIncome(ctx context.Context, userID string, query IncomeQuery) ([]Income, error)
}

// Breakdown is the total and count for one category or source.
type Breakdown struct {
	Name  string
	Total decimal.Decimal
	Count int
}

// DailyTotal is the sum of expenses on one day.
type DailyTotal struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Summary aggregates one month of a user's expenses and income.
type Summary struct {
	UserID            string
	Month             Month
	TotalExpenses     decimal.Decimal
	ExpenseCount      int
	TotalIncome       decimal.Decimal
	IncomeCount       int
	AverageIncome     decimal.Decimal
	Balance           decimal.Decimal
	TopCategory       string
	CategoryBreakdown []Breakdown
	SourceBreakdown   []Breakdown
	Last7Days         []DailyTotal
}

// SummaryService builds monthly aggregates.
type SummaryService struct {
	expenses expenseLister
	incomes  incomeLister
	clock    func() time.Time
}

func NewSummaryService(expenses expenseLister, incomes incomeLister) *SummaryService {
	return &SummaryService{expenses: expenses, incomes: incomes, clock: utcNow}
}

// MonthlySummary aggregates month for userID. A nil month means the current one.
func (s *SummaryService) MonthlySummary(ctx context.Context, userID string, month *Month) (*Summary, error) {
	if userID == "" {
		return nil, validationError("userId is required")
	}

	today := now.With(s.clock().UTC()).BeginningOfDay()
	target := MonthOf(today)
	if month != nil {
		target = *month
	}

	logData := logging.GetLogData(ctx)
	var expenses []Expense
	var income []Income

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stopTimer := logData.AddTiming("listExpensesMs")
		defer stopTimer()
		var err error
		expenses, err = s.expenses.ListExpenses(gctx, userID, ExpenseQuery{})
		return err
	})
	g.Go(func() error {
		stopTimer := logData.AddTiming("listIncomeMs")
		defer stopTimer()
		var err error
		income, err = s.incomes.ListIncome(gctx, userID, IncomeQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{UserID: userID, Month: target}
	summarizeExpenses(summary, expenses, target)
	summarizeIncome(summary, income, target)
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.Last7Days = lastDays(expenses, today, recentDays)

	return summary, nil
}

func summarizeExpenses(summary *Summary, expenses []Expense, month Month) {
	summary.TotalExpenses = decimal.Zero
	byCategory := make(map[string]*Breakdown)
	for _, e := range expenses {
		if !month.Contains(e.Date) {
			continue
		}
		summary.TotalExpenses = summary.TotalExpenses.Add(e.Amount)
		summary.ExpenseCount++
		addTo(byCategory, e.Category, e.Amount)
	}

	summary.CategoryBreakdown = sortedBreakdown(byCategory)
	summary.TopCategory = NoTopCategory
	if len(summary.CategoryBreakdown) > 0 {
		summary.TopCategory = summary.CategoryBreakdown[0].Name
	}
}

func summarizeIncome(summary *Summary, income []Income, month Month) {
	summary.TotalIncome = decimal.Zero
	summary.AverageIncome = decimal.Zero
	bySource := make(map[string]*Breakdown)
	for _, i := range income {
		if !month.Contains(i.Date) {
			continue
		}
		summary.TotalIncome = summary.TotalIncome.Add(i.Amount)
		summary.IncomeCount++
		addTo(bySource, i.Source, i.Amount)
	}

	summary.SourceBreakdown = sortedBreakdown(bySource)
	if summary.IncomeCount > 0 {
		summary.AverageIncome = summary.TotalIncome.DivRound(decimal.NewFromInt(int64(summary.IncomeCount)), 2)
	}
}

func addTo(totals map[string]*Breakdown, name string, amount decimal.Decimal) {
	b, ok := totals[name]
	if !ok {
		b = &Breakdown{Name: name, Total: decimal.Zero}
		totals[name] = b
	}
	b.Total = b.Total.Add(amount)
	b.Count++
}

// sortedBreakdown orders by total descending, ties by name.
func sortedBreakdown(totals map[string]*Breakdown) []Breakdown {
	result := make([]Breakdown, 0, len(totals))
	for _, b := range totals {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Total.Cmp(result[j].Total); c != 0 {
			return c > 0
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// lastDays sums expenses per day for the n days ending today, oldest first.
func lastDays(expenses []Expense, today time.Time, n int) []DailyTotal {
	first := today.AddDate(0, 0, -(n - 1))
	days := make([]DailyTotal, n)
	for i := range days {
		days[i] = DailyTotal{Date: first.AddDate(0, 0, i), Amount: decimal.Zero}
	}

	for _, e := range expenses {
		if e.Date.Before(first) || e.Date.After(today) {
			continue
		}
		idx := int(e.Date.Sub(first).Hours() / 24)
		days[idx].Amount = days[idx].Amount.Add(e.Amount)
	}
	return days
}
