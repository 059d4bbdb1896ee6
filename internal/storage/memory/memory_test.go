package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func insertExpense(t *testing.T, table *ExpensesTable, userID, id, category string, date time.Time) {
	t.Helper()
	_, err := table.Insert(context.Background(), &sqlconfig.ExpenseCreate{
		UserID:    userID,
		ExpenseID: id,
		Amount:    decimal.RequireFromString("10.00"),
		Category:  category,
		Date:      date,
		CreatedAt: date,
	})
	require.NoError(t, err)
}

func TestExpensesTable_InsertAndList(t *testing.T) {
	table := NewExpensesTable()
	ctx := context.Background()

	insertExpense(t, table, "u1", "a", "Food", day(2024, 5, 1))
	insertExpense(t, table, "u1", "b", "Rent", day(2024, 5, 20))
	insertExpense(t, table, "u1", "c", "Food", day(2024, 6, 2))
	insertExpense(t, table, "u2", "d", "Food", day(2024, 5, 3))

	rows, err := table.ListByUser(ctx, "u1", nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{rows[0].ExpenseID, rows[1].ExpenseID, rows[2].ExpenseID})

	rows, err = table.ListByUser(ctx, "u1", &sqlconfig.ExpenseFilter{
		Dates: sqlconfig.DateRange{From: day(2024, 5, 1), To: day(2024, 6, 1)},
	})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = table.ListByUser(ctx, "u1", &sqlconfig.ExpenseFilter{Category: "Food"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = table.ListByUser(ctx, "nobody", nil)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExpensesTable_DuplicateKey(t *testing.T) {
	table := NewExpensesTable()
	insertExpense(t, table, "u1", "a", "Food", day(2024, 5, 1))

	_, err := table.Insert(context.Background(), &sqlconfig.ExpenseCreate{UserID: "u1", ExpenseID: "a"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestExpensesTable_ListReturnsCopies(t *testing.T) {
	table := NewExpensesTable()
	insertExpense(t, table, "u1", "a", "Food", day(2024, 5, 1))

	rows, err := table.ListByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	rows[0].Category = "Rent"

	rows, err = table.ListByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Food", rows[0].Category)
}

func TestExpensesTable_UpdatePartial(t *testing.T) {
	table := NewExpensesTable()
	insertExpense(t, table, "u1", "a", "Food", day(2024, 5, 1))

	note := "groceries"
	amount := decimal.RequireFromString("42.50")
	row, err := table.Update(context.Background(), "u1", "a", &sqlconfig.ExpenseUpdate{Amount: &amount, Note: &note})
	require.NoError(t, err)
	assert.True(t, amount.Equal(row.Amount))
	assert.Equal(t, "groceries", row.Note)
	assert.Equal(t, "Food", row.Category)
	assert.Equal(t, day(2024, 5, 1), row.Date)
}

func TestExpensesTable_UpdateErrors(t *testing.T) {
	table := NewExpensesTable()
	insertExpense(t, table, "u1", "a", "Food", day(2024, 5, 1))
	note := "x"

	_, err := table.Update(context.Background(), "u1", "missing", &sqlconfig.ExpenseUpdate{Note: &note})
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	_, err = table.Update(context.Background(), "u2", "a", &sqlconfig.ExpenseUpdate{Note: &note})
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	_, err = table.Update(context.Background(), "u1", "a", &sqlconfig.ExpenseUpdate{})
	assert.ErrorIs(t, err, sqlconfig.ErrEmptyUpdate)
}

func TestExpensesTable_DeleteIsIdempotent(t *testing.T) {
	table := NewExpensesTable()
	insertExpense(t, table, "u1", "a", "Food", day(2024, 5, 1))

	require.NoError(t, table.Delete(context.Background(), "u1", "a"))
	require.NoError(t, table.Delete(context.Background(), "u1", "a"))
	require.NoError(t, table.Delete(context.Background(), "ghost", "a"))

	rows, err := table.ListByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestIncomesTable_Lifecycle(t *testing.T) {
	table := NewIncomesTable()
	ctx := context.Background()

	_, err := table.Insert(ctx, &sqlconfig.IncomeCreate{
		UserID: "u1", IncomeID: "i1", Amount: decimal.NewFromInt(3000), Source: "Salary",
		Date: day(2024, 5, 1), CreatedAt: day(2024, 5, 1),
	})
	require.NoError(t, err)
	_, err = table.Insert(ctx, &sqlconfig.IncomeCreate{
		UserID: "u1", IncomeID: "i2", Amount: decimal.NewFromInt(200), Source: "Freelance",
		Date: day(2024, 4, 15), CreatedAt: day(2024, 4, 15),
	})
	require.NoError(t, err)

	rows, err := table.ListByUser(ctx, "u1", &sqlconfig.IncomeFilter{
		Dates: sqlconfig.DateRange{From: day(2024, 5, 1), To: day(2024, 6, 1)},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "i1", rows[0].IncomeID)

	source := "Dividend"
	row, err := table.Update(ctx, "u1", "i2", &sqlconfig.IncomeUpdate{Source: &source})
	require.NoError(t, err)
	assert.Equal(t, "Dividend", row.Source)
	assert.True(t, decimal.NewFromInt(200).Equal(row.Amount))

	_, err = table.Update(ctx, "u1", "nope", &sqlconfig.IncomeUpdate{Source: &source})
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	require.NoError(t, table.Delete(ctx, "u1", "i1"))
	rows, err = table.ListByUser(ctx, "u1", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "i2", rows[0].IncomeID)
}

func TestExpensesTable_ConcurrentWriters(t *testing.T) {
	table := NewExpensesTable()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := table.Insert(ctx, &sqlconfig.ExpenseCreate{
				UserID:    "u1",
				ExpenseID: decimal.NewFromInt(int64(i)).String(),
				Amount:    decimal.NewFromInt(1),
				Category:  "Other",
				Date:      day(2024, 5, 1),
			})
			assert.NoError(t, err)
			_, err = table.ListByUser(ctx, "u1", nil)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	rows, err := table.ListByUser(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 50)
}
