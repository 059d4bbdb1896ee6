package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/memory"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type Storage struct {
	DB       *sql.DB
	Expenses sqlconfig.IExpenseTable
	Incomes  sqlconfig.IIncomeTable
}

// NewStorage wires the postgres tables to an open database.
func NewStorage(db *sql.DB) *Storage {
	return &Storage{
		DB:       db,
		Expenses: sqlconfig.NewExpensesTable(db),
		Incomes:  sqlconfig.NewIncomesTable(db),
	}
}

// NewMemoryStorage returns an empty in-process store.
func NewMemoryStorage() *Storage {
	return &Storage{
		Expenses: memory.NewExpensesTable(),
		Incomes:  memory.NewIncomesTable(),
	}
}

// Open connects the backend selected in cfg.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.Storage.Backend == config.StorageBackendMemory {
		return NewMemoryStorage(), nil
	}

	db, err := OpenPostgres(ctx, cfg.PostgresDSN())
	if err != nil {
		return nil, err
	}
	return NewStorage(db), nil
}

// OpenPostgres opens and pings a lib/pq connection pool.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "db.Ping")
	}
	return db, nil
}

// Close releases the database pool, if any.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
