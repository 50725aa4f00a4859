package publisher_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark1979smith/farmison/config"
	"github.com/mark1979smith/farmison/internal/publisher"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	calls    int
	messages []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("broker unavailable")
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func fastRetry(attempts int) config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestPublish_WritesJSONWithKey(t *testing.T) {
	writer := &fakeWriter{}
	p := publisher.NewPublisher(map[string]publisher.MessageWriter{"alerts": writer}, fastRetry(3))

	err := p.Publish(context.Background(), "alerts", "42", map[string]int{"order_id": 42})

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("42"), writer.messages[0].Key)

	var body map[string]int
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &body))
	assert.Equal(t, 42, body["order_id"])
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := publisher.NewPublisher(map[string]publisher.MessageWriter{}, fastRetry(1))

	err := p.Publish(context.Background(), "missing", "", struct{}{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestPublish_RetriesUntilSuccess(t *testing.T) {
	writer := &fakeWriter{failures: 2}
	p := publisher.NewPublisher(map[string]publisher.MessageWriter{"alerts": writer}, fastRetry(3))

	err := p.Publish(context.Background(), "alerts", "", "hello")

	require.NoError(t, err)
	assert.Equal(t, 3, writer.calls)
	assert.Len(t, writer.messages, 1)
}

func TestPublish_GivesUpAfterMaxAttempts(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	p := publisher.NewPublisher(map[string]publisher.MessageWriter{"alerts": writer}, fastRetry(2))

	err := p.Publish(context.Background(), "alerts", "", "hello")

	require.Error(t, err)
	assert.Equal(t, 2, writer.calls)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestPublish_CancelledDuringRetry(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	p := publisher.NewPublisher(map[string]publisher.MessageWriter{"alerts": writer}, config.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, "alerts", "", "hello")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, writer.calls)
}

func TestClose_ClosesWriters(t *testing.T) {
	a, b := &fakeWriter{}, &fakeWriter{}
	p := publisher.NewPublisher(map[string]publisher.MessageWriter{"a": a, "b": b}, fastRetry(1))

	require.NoError(t, p.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
