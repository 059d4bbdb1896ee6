package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/cache"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// EventDispatcher queues change events for asynchronous publishing.
type EventDispatcher interface {
	Dispatch(ev events.ChangeEvent) bool
}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(events.ChangeEvent) bool { return true }

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
	Income  *IncomeService
	Summary *SummaryService
}

// NewService creates a new Service. listCache and dispatcher may be nil.
func NewService(store *storage.Storage, listCache cache.ListCache, dispatcher EventDispatcher) *Service {
	expenseService := NewExpenseService(store, listCache, dispatcher)
	incomeService := NewIncomeService(store, listCache, dispatcher)
	return &Service{
		Expense: expenseService,
		Income:  incomeService,
		Summary: NewSummaryService(expenseService, incomeService),
	}
}

// newID returns a time-ordered UUIDv7 string.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
