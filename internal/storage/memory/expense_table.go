package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var _ sqlconfig.IExpenseTable = (*ExpensesTable)(nil)

// ExpensesTable keeps expenses per user in process memory.
type ExpensesTable struct {
	mu   sync.RWMutex
	rows map[string]map[string]sqlconfig.Expense
}

func NewExpensesTable() *ExpensesTable {
	return &ExpensesTable{rows: make(map[string]map[string]sqlconfig.Expense)}
}

func (t *ExpensesTable) Insert(_ context.Context, create *sqlconfig.ExpenseCreate) (_ *sqlconfig.Expense, err error) {
	defer metrics.ObserveStore("expenses", "insert")(&err)

	row := sqlconfig.Expense{
		UserID:    create.UserID,
		ExpenseID: create.ExpenseID,
		Amount:    create.Amount,
		Category:  create.Category,
		Date:      create.Date,
		Note:      create.Note,
		CreatedAt: create.CreatedAt,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	userRows, ok := t.rows[create.UserID]
	if !ok {
		userRows = make(map[string]sqlconfig.Expense)
		t.rows[create.UserID] = userRows
	}
	if _, exists := userRows[create.ExpenseID]; exists {
		return nil, ErrDuplicateKey
	}
	userRows[create.ExpenseID] = row

	return &row, nil
}

func (t *ExpensesTable) ListByUser(_ context.Context, userID string, filter *sqlconfig.ExpenseFilter) (_ []*sqlconfig.Expense, err error) {
	defer metrics.ObserveStore("expenses", "list")(&err)

	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]*sqlconfig.Expense, 0, len(t.rows[userID]))
	for _, row := range t.rows[userID] {
		if filter != nil {
			if !inRange(row.Date, filter.Dates) {
				continue
			}
			if filter.Category != "" && row.Category != filter.Category {
				continue
			}
		}
		row := row
		result = append(result, &row)
	}

	sort.Slice(result, func(i, j int) bool {
		return newerFirst(result[i].Date, result[j].Date, result[i].CreatedAt, result[j].CreatedAt, result[i].ExpenseID, result[j].ExpenseID)
	})
	return result, nil
}

func (t *ExpensesTable) Update(_ context.Context, userID, expenseID string, update *sqlconfig.ExpenseUpdate) (_ *sqlconfig.Expense, err error) {
	defer metrics.ObserveStore("expenses", "update")(&err)

	if update.IsEmpty() {
		return nil, sqlconfig.ErrEmptyUpdate
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[userID][expenseID]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	if update.Amount != nil {
		row.Amount = *update.Amount
	}
	if update.Category != nil {
		row.Category = *update.Category
	}
	if update.Date != nil {
		row.Date = *update.Date
	}
	if update.Note != nil {
		row.Note = *update.Note
	}
	t.rows[userID][expenseID] = row

	return &row, nil
}

func (t *ExpensesTable) Delete(_ context.Context, userID, expenseID string) (err error) {
	defer metrics.ObserveStore("expenses", "delete")(&err)

	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.rows[userID], expenseID)
	if len(t.rows[userID]) == 0 {
		delete(t.rows, userID)
	}
	return nil
}
