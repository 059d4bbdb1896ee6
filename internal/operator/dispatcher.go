package operator

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/metrics"
)

// Dispatcher manages the queue, starts/stops Operators (workers), and enqueues events.
type Dispatcher struct {
	publisher  events.Publisher
	queue      chan ActionItem
	numWorkers int
	logger     *logrus.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	mu       sync.RWMutex
	stopped  bool
}

func NewDispatcher(publisher events.Publisher, numWorkers, queueSize int, logger *logrus.Logger) *Dispatcher {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		publisher:  publisher,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
		logger:     logger,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.publisher, d.queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for the workers to publish what is left.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()

		d.wg.Wait()
	})
}

// Dispatch enqueues ev without blocking. When the queue is full or the
// dispatcher is stopped the event is dropped and false is returned.
func (d *Dispatcher) Dispatch(ev events.ChangeEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.drop(ev, "stopped")
		return false
	}

	select {
	case d.queue <- ActionItem{event: ev}:
		return true
	default:
		d.drop(ev, "queue full")
		return false
	}
}

func (d *Dispatcher) drop(ev events.ChangeEvent, reason string) {
	metrics.EventDropped(string(ev.Type))
	d.logger.WithFields(logrus.Fields{
		"type":       ev.Type,
		"userId":     ev.UserID,
		"resourceId": ev.ResourceID,
		"reason":     reason,
	}).Warn("Dispatcher.Dispatch.dropped")
}
