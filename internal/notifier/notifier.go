package notifier

import (
	"context"
	"strconv"
	"time"

	"github.com/mark1979smith/farmison/internal/models"
)

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// EventNotifier turns operator alerts into Kafka events. The office mailer
// consumes both topics.
type EventNotifier struct {
	Publisher Publisher
	now       func() time.Time
}

func NewEventNotifier(p Publisher) *EventNotifier {
	return &EventNotifier{
		Publisher: p,
		now:       time.Now,
	}
}

func (n *EventNotifier) NotifyDuplicatePayment(ctx context.Context, orderID int64) error {
	event := models.DuplicatePaymentEvent{
		OrderID:    orderID,
		OccurredAt: n.now(),
	}
	return n.Publisher.Publish(ctx, models.DuplicatePaymentTopic, strconv.FormatInt(orderID, 10), event)
}

func (n *EventNotifier) NotifyHighFraudScore(ctx context.Context, score float64, orderReference string, response map[string]string, nonProduction bool) error {
	event := models.HighFraudScoreEvent{
		Score:          score,
		OrderReference: orderReference,
		Response:       response,
		NonProduction:  nonProduction,
		OccurredAt:     n.now(),
	}
	return n.Publisher.Publish(ctx, models.HighFraudScoreTopic, orderReference, event)
}
