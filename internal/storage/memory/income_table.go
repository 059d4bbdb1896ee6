package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var _ sqlconfig.IIncomeTable = (*IncomesTable)(nil)

// IncomesTable keeps incomes per user in process memory.
type IncomesTable struct {
	mu   sync.RWMutex
	rows map[string]map[string]sqlconfig.Income
}

func NewIncomesTable() *IncomesTable {
	return &IncomesTable{rows: make(map[string]map[string]sqlconfig.Income)}
}

func (t *IncomesTable) Insert(_ context.Context, create *sqlconfig.IncomeCreate) (_ *sqlconfig.Income, err error) {
	defer metrics.ObserveStore("incomes", "insert")(&err)

	row := sqlconfig.Income{
		UserID:    create.UserID,
		IncomeID:  create.IncomeID,
		Amount:    create.Amount,
		Source:    create.Source,
		Date:      create.Date,
		CreatedAt: create.CreatedAt,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	userRows, ok := t.rows[create.UserID]
	if !ok {
		userRows = make(map[string]sqlconfig.Income)
		t.rows[create.UserID] = userRows
	}
	if _, exists := userRows[create.IncomeID]; exists {
		return nil, ErrDuplicateKey
	}
	userRows[create.IncomeID] = row

	return &row, nil
}

func (t *IncomesTable) ListByUser(_ context.Context, userID string, filter *sqlconfig.IncomeFilter) (_ []*sqlconfig.Income, err error) {
	defer metrics.ObserveStore("incomes", "list")(&err)

	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]*sqlconfig.Income, 0, len(t.rows[userID]))
	for _, row := range t.rows[userID] {
		if filter != nil && !inRange(row.Date, filter.Dates) {
			continue
		}
		row := row
		result = append(result, &row)
	}

	sort.Slice(result, func(i, j int) bool {
		return newerFirst(result[i].Date, result[j].Date, result[i].CreatedAt, result[j].CreatedAt, result[i].IncomeID, result[j].IncomeID)
	})
	return result, nil
}

func (t *IncomesTable) Update(_ context.Context, userID, incomeID string, update *sqlconfig.IncomeUpdate) (_ *sqlconfig.Income, err error) {
	defer metrics.ObserveStore("incomes", "update")(&err)

	if update.IsEmpty() {
		return nil, sqlconfig.ErrEmptyUpdate
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[userID][incomeID]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	if update.Amount != nil {
		row.Amount = *update.Amount
	}
	if update.Source != nil {
		row.Source = *update.Source
	}
	if update.Date != nil {
		row.Date = *update.Date
	}
	t.rows[userID][incomeID] = row

	return &row, nil
}

func (t *IncomesTable) Delete(_ context.Context, userID, incomeID string) (err error) {
	defer metrics.ObserveStore("incomes", "delete")(&err)

	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.rows[userID], incomeID)
	if len(t.rows[userID]) == 0 {
		delete(t.rows, userID)
	}
	return nil
}
