package operator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/metrics"
)

const publishTimeout = 10 * time.Second

// Operator is the worker that publishes events from the queue.
type Operator struct {
	publisher events.Publisher
	queue     chan ActionItem
	logger    *logrus.Logger
}

func NewOperator(publisher events.Publisher, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		publisher: publisher,
		queue:     queue,
		logger:    logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	eventType := string(item.event.Type)
	if err := o.publisher.Publish(ctx, item.event); err != nil {
		metrics.EventFailed(eventType)
		o.logger.WithError(err).WithFields(logrus.Fields{
			"type":       eventType,
			"userId":     item.event.UserID,
			"resourceId": item.event.ResourceID,
		}).Error("Operator.processItem.publish error")
		return
	}
	metrics.EventPublished(eventType)
}

type ActionItem struct {
	event events.ChangeEvent
}
