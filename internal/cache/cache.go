package cache

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
)

const (
	ResourceExpenses = "expenses"
	ResourceIncome   = "income"
)

// ListCache holds serialized per-user lists. Failures are never returned;
// callers fall back to the store on a miss.
type ListCache interface {
	Get(ctx context.Context, userID, resource string) ([]byte, bool)
	Set(ctx context.Context, userID, resource string, value []byte)
	Invalidate(ctx context.Context, userID, resource string)
}

// New returns the cache selected in cfg.
func New(cfg config.CacheConfig, logger *logrus.Logger) (ListCache, error) {
	if cfg.Backend != config.CacheBackendMemcached {
		return Noop{}, nil
	}
	return NewMemcache(cfg.Hosts, cfg.TTL, logger)
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, string, []byte)        {}
func (Noop) Invalidate(context.Context, string, string)         {}
