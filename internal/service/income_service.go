package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/cache"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// IncomeService handles income business logic.
type IncomeService struct {
	storage    *storage.Storage
	cache      cache.ListCache
	dispatcher EventDispatcher

	// writes counts mutations; a list read only caches its result when
	// no mutation landed while it was reading.
	writes atomic.Uint64

	clock func() time.Time
	newID func() (string, error)
}

func NewIncomeService(store *storage.Storage, listCache cache.ListCache, dispatcher EventDispatcher) *IncomeService {
	if listCache == nil {
		listCache = cache.Noop{}
	}
	if dispatcher == nil {
		dispatcher = noopDispatcher{}
	}
	return &IncomeService{
		storage:    store,
		cache:      listCache,
		dispatcher: dispatcher,
		clock:      utcNow,
		newID:      newID,
	}
}

// CreateIncome validates and stores a new income transaction.
func (s *IncomeService) CreateIncome(ctx context.Context, income NewIncome) (*Income, error) {
	if income.UserID == "" {
		return nil, validationError("userId is required")
	}
	amount, err := normalizeAmount(income.Amount)
	if err != nil {
		return nil, err
	}
	if err := validateSource(income.Source); err != nil {
		return nil, err
	}
	if income.Date.IsZero() {
		return nil, validationError("date is required")
	}

	id, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "income.newID")
	}

	row, err := s.storage.Incomes.Insert(ctx, &sqlconfig.IncomeCreate{
		UserID:    income.UserID,
		IncomeID:  id,
		Amount:    amount,
		Source:    income.Source,
		Date:      truncateDay(income.Date),
		CreatedAt: s.clock(),
	})
	if err != nil {
		return nil, err
	}

	created := incomeFromStorage(row)
	s.afterMutation(ctx, events.IncomeCreated, created.UserID, created.IncomeID, created)
	return &created, nil
}

// CreateMonthlyIncome records a whole month's income as one Salary
// transaction dated the first of that month.
func (s *IncomeService) CreateMonthlyIncome(ctx context.Context, userID string, month Month, amount decimal.Decimal) (*Income, error) {
	return s.CreateIncome(ctx, NewIncome{
		UserID: userID,
		Amount: amount,
		Source: MonthlyIncomeSource,
		Date:   month.FirstDay(),
	})
}

// ListIncome returns the user's income, newest date first.
func (s *IncomeService) ListIncome(ctx context.Context, userID string, query IncomeQuery) ([]Income, error) {
	if userID == "" {
		return nil, validationError("userId is required")
	}

	generation := s.writes.Load()
	if query.Month == nil {
		if cached, ok := s.fromCache(ctx, userID); ok {
			return cached, nil
		}
	}

	var filter *sqlconfig.IncomeFilter
	if query.Month != nil {
		filter = &sqlconfig.IncomeFilter{}
		filter.Dates.From, filter.Dates.To = query.Month.Range()
	}

	rows, err := s.storage.Incomes.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	income := make([]Income, len(rows))
	for i, row := range rows {
		income[i] = incomeFromStorage(row)
	}

	if query.Month == nil {
		s.toCache(ctx, userID, income, generation)
	}
	return income, nil
}

// UpdateIncome applies the supplied fields and returns the stored income.
func (s *IncomeService) UpdateIncome(ctx context.Context, userID, incomeID string, patch IncomePatch) (*Income, error) {
	if userID == "" || incomeID == "" {
		return nil, validationError("userId and incomeId are required")
	}
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	update := &sqlconfig.IncomeUpdate{Source: patch.Source}
	if patch.Amount != nil {
		amount, err := normalizeAmount(*patch.Amount)
		if err != nil {
			return nil, err
		}
		update.Amount = &amount
	}
	if patch.Source != nil {
		if err := validateSource(*patch.Source); err != nil {
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

	row, err := s.storage.Incomes.Update(ctx, userID, incomeID, update)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updated := incomeFromStorage(row)
	s.afterMutation(ctx, events.IncomeUpdated, userID, incomeID, updated)
	return &updated, nil
}

// DeleteIncome removes the income if it exists.
func (s *IncomeService) DeleteIncome(ctx context.Context, userID, incomeID string) error {
	if userID == "" || incomeID == "" {
		return validationError("userId and incomeId are required")
	}

	if err := s.storage.Incomes.Delete(ctx, userID, incomeID); err != nil {
		return err
	}

	s.afterMutation(ctx, events.IncomeDeleted, userID, incomeID, nil)
	return nil
}

func (s *IncomeService) afterMutation(ctx context.Context, eventType events.Type, userID, incomeID string, payload interface{}) {
	s.writes.Add(1)
	s.cache.Invalidate(ctx, userID, cache.ResourceIncome)

	ev, err := events.NewChangeEvent(eventType, userID, incomeID, s.clock(), payload)
	if err != nil {
		logging.GetLogData(ctx).Log().WithError(err).Warn("IncomeService.afterMutation.event")
		return
	}
	s.dispatcher.Dispatch(ev)
}

func (s *IncomeService) fromCache(ctx context.Context, userID string) ([]Income, bool) {
	raw, ok := s.cache.Get(ctx, userID, cache.ResourceIncome)
	if !ok {
		return nil, false
	}
	var income []Income
	if err := json.Unmarshal(raw, &income); err != nil {
		logging.GetLogData(ctx).Log().WithError(err).Warn("IncomeService.fromCache.decode")
		return nil, false
	}
	logging.GetLogData(ctx).AddData("cacheHit", true)
	return income, true
}

func (s *IncomeService) toCache(ctx context.Context, userID string, income []Income, generation uint64) {
	raw, err := json.Marshal(income)
	if err != nil {
		logging.GetLogData(ctx).Log().WithError(err).Warn("IncomeService.toCache.encode")
		return
	}
	if s.writes.Load() != generation {
		return
	}
	s.cache.Set(ctx, userID, cache.ResourceIncome, raw)
	if s.writes.Load() != generation {
		s.cache.Invalidate(ctx, userID, cache.ResourceIncome)
	}
}
