//go:build integration

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/finance-tracker/internal/storage/migrations"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newPostgresStorage(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("fintrack"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("testpassword"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	result, err := migrations.Up(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), result.PreMigrationVersion)
	assert.Equal(t, uint(1), result.PostMigrationVersion)

	return NewStorage(db)
}

func TestPostgres_ExpenseLifecycle(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	created, err := store.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		UserID:    "u1",
		ExpenseID: "0190a8f2-0000-7000-8000-000000000001",
		Amount:    decimal.RequireFromString("500.00"),
		Category:  "Food",
		Date:      date,
		Note:      "lunch",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.True(t, decimal.RequireFromString("500").Equal(created.Amount))
	assert.True(t, date.Equal(created.Date.UTC()))

	rows, err := store.Expenses.ListByUser(ctx, "u1", &sqlconfig.ExpenseFilter{
		Dates: sqlconfig.DateRange{From: date, To: date.AddDate(0, 1, 0)},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	note := "team lunch"
	updated, err := store.Expenses.Update(ctx, "u1", created.ExpenseID, &sqlconfig.ExpenseUpdate{Note: &note})
	require.NoError(t, err)
	assert.Equal(t, "team lunch", updated.Note)
	assert.Equal(t, "Food", updated.Category)

	_, err = store.Expenses.Update(ctx, "u2", created.ExpenseID, &sqlconfig.ExpenseUpdate{Note: &note})
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	require.NoError(t, store.Expenses.Delete(ctx, "u1", created.ExpenseID))
	require.NoError(t, store.Expenses.Delete(ctx, "u1", created.ExpenseID))

	rows, err = store.Expenses.ListByUser(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPostgres_IncomeLifecycle(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	for i, date := range []time.Time{
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
	} {
		_, err := store.Incomes.Insert(ctx, &sqlconfig.IncomeCreate{
			UserID:    "u1",
			IncomeID:  decimal.NewFromInt(int64(i)).String(),
			Amount:    decimal.NewFromInt(1000),
			Source:    "Salary",
			Date:      date,
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	rows, err := store.Incomes.ListByUser(ctx, "u1", &sqlconfig.IncomeFilter{
		Dates: sqlconfig.DateRange{
			From: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0].IncomeID)

	amount := decimal.RequireFromString("1250.75")
	updated, err := store.Incomes.Update(ctx, "u1", "1", &sqlconfig.IncomeUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, amount.Equal(updated.Amount))
	assert.Equal(t, "Salary", updated.Source)
}
