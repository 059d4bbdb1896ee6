package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/carson-networks/finance-tracker/internal/events"
)

var fixedNow = time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs(prefix string) func() (string, error) {
	var mu sync.Mutex
	n := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n), nil
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type memoryCache struct {
	mu          sync.Mutex
	items       map[string][]byte
	invalidated []string

	// afterSet runs once the value is stored, outside the lock.
	afterSet func()
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, userID, resource string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[resource+":"+userID]
	return v, ok
}

func (c *memoryCache) Set(_ context.Context, userID, resource string, value []byte) {
	c.mu.Lock()
	c.items[resource+":"+userID] = value
	hook := c.afterSet
	c.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (c *memoryCache) Invalidate(_ context.Context, userID, resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, resource+":"+userID)
	c.invalidated = append(c.invalidated, resource+":"+userID)
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.ChangeEvent
}

func (d *recordingDispatcher) Dispatch(ev events.ChangeEvent) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
	return true
}

func (d *recordingDispatcher) types() []events.Type {
	d.mu.Lock()
	defer d.mu.Unlock()
	types := make([]events.Type, len(d.events))
	for i, ev := range d.events {
		types[i] = ev.Type
	}
	return types
}

func (c *memoryCache) has(userID, resource string) bool {
	_, ok := c.Get(context.Background(), userID, resource)
	return ok
}
