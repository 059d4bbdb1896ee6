package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "fintrack"

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

type MemcacheClient struct {
	client memcacheClient
	ttl    time.Duration
	logger *logrus.Logger
}

// NewMemcache connects to hosts and pings them once.
func NewMemcache(hosts []string, ttl time.Duration, logger *logrus.Logger) (*MemcacheClient, error) {
	logger.WithField("hosts", hosts).Info("cache.NewMemcache")
	mc := memcache.New(hosts...)
	if err := mc.Ping(); err != nil {
		return nil, err
	}
	return &MemcacheClient{client: mc, ttl: ttl, logger: logger}, nil
}

func formatKey(userID, resource string) string {
	return keyPrefix + ":" + resource + ":" + userID
}

func (mc *MemcacheClient) Get(_ context.Context, userID, resource string) ([]byte, bool) {
	item, err := mc.client.Get(formatKey(userID, resource))
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			mc.logger.WithError(err).WithField("resource", resource).Warn("cache.Get")
		}
		return nil, false
	}
	return item.Value, true
}

func (mc *MemcacheClient) Set(_ context.Context, userID, resource string, value []byte) {
	err := mc.client.Set(&memcache.Item{
		Key:        formatKey(userID, resource),
		Value:      value,
		Expiration: int32(mc.ttl.Seconds()),
	})
	if err != nil {
		mc.logger.WithError(err).WithField("resource", resource).Warn("cache.Set")
	}
}

func (mc *MemcacheClient) Invalidate(_ context.Context, userID, resource string) {
	err := mc.client.Delete(formatKey(userID, resource))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		mc.logger.WithError(err).WithField("resource", resource).Warn("cache.Invalidate")
	}
}
