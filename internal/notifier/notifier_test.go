package notifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mark1979smith/farmison/internal/models"
	"github.com/mark1979smith/farmison/internal/notifier"
	"github.com/mark1979smith/farmison/internal/notifier/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifyDuplicatePayment(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	n := notifier.NewEventNotifier(mockPublisher)
	ctx := context.Background()

	mockPublisher.EXPECT().
		Publish(ctx, models.DuplicatePaymentTopic, "1234", mock.MatchedBy(func(evt models.DuplicatePaymentEvent) bool {
			return evt.OrderID == 1234 && !evt.OccurredAt.IsZero()
		})).
		Return(nil).
		Once()

	err := n.NotifyDuplicatePayment(ctx, 1234)

	assert.NoError(t, err)
}

func TestNotifyHighFraudScore(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	n := notifier.NewEventNotifier(mockPublisher)
	ctx := context.Background()
	response := map[string]string{"riskScore": "7.5", "maxmindID": "ABCD1234"}

	mockPublisher.EXPECT().
		Publish(ctx, models.HighFraudScoreTopic, "FM001234", mock.MatchedBy(func(evt models.HighFraudScoreEvent) bool {
			return evt.Score == 7.5 &&
				evt.OrderReference == "FM001234" &&
				evt.Response["maxmindID"] == "ABCD1234" &&
				evt.NonProduction
		})).
		Return(nil).
		Once()

	err := n.NotifyHighFraudScore(ctx, 7.5, "FM001234", response, true)

	assert.NoError(t, err)
}

func TestNotify_PublisherError(t *testing.T) {
	mockPublisher := mocks.NewMockPublisher(t)
	n := notifier.NewEventNotifier(mockPublisher)
	ctx := context.Background()

	mockPublisher.EXPECT().
		Publish(ctx, models.DuplicatePaymentTopic, "9", mock.Anything).
		Return(errors.New("kafka down")).
		Once()

	err := n.NotifyDuplicatePayment(ctx, 9)

	assert.EqualError(t, err, "kafka down")
}
