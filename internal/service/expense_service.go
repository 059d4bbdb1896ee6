package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/carson-networks/finance-tracker/internal/cache"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ExpenseService handles expense business logic.
type ExpenseService struct {
	storage    *storage.Storage
	cache      cache.ListCache
	dispatcher EventDispatcher

	// writes counts mutations; a list read only caches its result when
	// no mutation landed while it was reading.
	writes atomic.Uint64

	clock func() time.Time
	newID func() (string, error)
}

func NewExpenseService(store *storage.Storage, listCache cache.ListCache, dispatcher EventDispatcher) *ExpenseService {
	if listCache == nil {
		listCache = cache.Noop{}
	}
	if dispatcher == nil {
		dispatcher = noopDispatcher{}
	}
	return &ExpenseService{
		storage:    store,
		cache:      listCache,
		dispatcher: dispatcher,
		clock:      utcNow,
		newID:      newID,
	}
}

// CreateExpense validates and stores a new expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, expense NewExpense) (*Expense, error) {
	if expense.UserID == "" {
		return nil, validationError("userId is required")
	}
	amount, err := normalizeAmount(expense.Amount)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(expense.Category); err != nil {
		return nil, err
	}
	if expense.Date.IsZero() {
		return nil, validationError("date is required")
	}

	id, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "expense.newID")
	}

	row, err := s.storage.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		UserID:    expense.UserID,
		ExpenseID: id,
		Amount:    amount,
		Category:  expense.Category,
		Date:      truncateDay(expense.Date),
		Note:      expense.Note,
		CreatedAt: s.clock(),
	})
	if err != nil {
		return nil, err
	}

	created := expenseFromStorage(row)
	s.afterMutation(ctx, events.ExpenseCreated, created.UserID, created.ExpenseID, created)
	return &created, nil
}

// ListExpenses returns the user's expenses, newest date first. The
// unfiltered list is served from cache when possible.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID string, query ExpenseQuery) ([]Expense, error) {
	if userID == "" {
		return nil, validationError("userId is required")
	}
	if query.Category != "" {
		if err := validateCategory(query.Category); err != nil {
			return nil, err
		}
	}

	generation := s.writes.Load()
	unfiltered := query.Month == nil && query.Category == ""
	if unfiltered {
		if cached, ok := s.fromCache(ctx, userID); ok {
			return cached, nil
		}
	}

	var filter *sqlconfig.ExpenseFilter
	if !unfiltered {
		filter = &sqlconfig.ExpenseFilter{Category: query.Category}
		if query.Month != nil {
			filter.Dates.From, filter.Dates.To = query.Month.Range()
		}
	}

	rows, err := s.storage.Expenses.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}

	if unfiltered {
		s.toCache(ctx, userID, expenses, generation)
	}
	return expenses, nil
}

// UpdateExpense applies the supplied fields and returns the stored expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, patch ExpensePatch) (*Expense, error) {
	if userID == "" || expenseID == "" {
		return nil, validationError("userId and expenseId are required")
	}
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	update := &sqlconfig.ExpenseUpdate{
		Category: patch.Category,
		Note:     patch.Note,
	}
	if patch.Amount != nil {
		amount, err := normalizeAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		update.Amount = &amount
	}
	if patch.Category != nil {
		if err := validateCategory(*patch.Category); err != nil {
			return nil, err
		}
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			return nil, validationError("date is required")
		}
		date := truncateDay(*patch.Date)
		update.Date = &date
	}

	row, err := s.storage.Expenses.Update(ctx, userID, expenseID, update)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updated := expenseFromStorage(row)
	s.afterMutation(ctx, events.ExpenseUpdated, userID, expenseID, updated)
	return &updated, nil
}

// DeleteExpense removes the expense if it exists.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if userID == "" || expenseID == "" {
		return validationError("userId and expenseId are required")
	}

	if err := s.storage.Expenses.Delete(ctx, userID, expenseID); err != nil {
		return err
	}

	s.afterMutation(ctx, events.ExpenseDeleted, userID, expenseID, nil)
	return nil
}

func (s *ExpenseService) afterMutation(ctx context.Context, eventType events.Type, userID, expenseID string, payload interface{}) {
	s.writes.Add(1)
	s.cache.Invalidate(ctx, userID, cache.ResourceExpenses)

	ev, err := events.NewChangeEvent(eventType, userID, expenseID, s.clock(), payload)
	if err != nil {
		logging.GetLogData(ctx).Log().WithError(err).Warn("ExpenseService.afterMutation.event")
		return
	}
	s.dispatcher.Dispatch(ev)
}

func (s *ExpenseService) fromCache(ctx context.Context, userID string) ([]Expense, bool) {
	raw, ok := s.cache.Get(ctx, userID, cache.ResourceExpenses)
	if !ok {
		return nil, false
	}
	var expenses []Expense
	if err := json.Unmarshal(raw, &expenses); err != nil {
		logging.GetLogData(ctx).Log().WithError(err).Warn("ExpenseService.fromCache.decode")
		return nil, false
	}
	logging.GetLogData(ctx).AddData("cacheHit", true)
	return expenses, true
}

func (s *ExpenseService) toCache(ctx context.Context, userID string, expenses []Expense, generation uint64) {
	raw, err := json.Marshal(expenses)
	if err != nil {
		logging.GetLogData(ctx).Log().WithError(err).Warn("ExpenseService.toCache.encode")
		return
	}
	if s.writes.Load() != generation {
		return
	}
	s.cache.Set(ctx, userID, cache.ResourceExpenses, raw)
	if s.writes.Load() != generation {
		s.cache.Invalidate(ctx, userID, cache.ResourceExpenses)
	}
}
