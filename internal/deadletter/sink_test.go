package deadletter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VivekGupta011/Distributed-Marketplace/config"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/deadletter"
)

type fakeWriter struct {
	mu       sync.Mutex
	failures int
	calls    int
	written  []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.failures > 0 {
		w.failures--
		return errors.New("kafka: leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newSink(w deadletter.Writer, attempts int) *deadletter.KafkaSink {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := deadletter.NewKafkaSinkWithWriter(w, config.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    4 * time.Millisecond,
	}, logger, nil)
	s.SetSleep(func(context.Context, time.Duration) error { return nil })
	return s
}

func TestSend_WritesLetterKeyedByQueue(t *testing.T) {
	w := &fakeWriter{}
	s := newSink(w, 3)

	err := s.Send(context.Background(), deadletter.Letter{
		OriginalExchange: "payment.events",
		RoutingKey:       "payment.confirmed",
		Queue:            "order-service-payment-confirmed",
		MessageID:        "m-1",
		Payload:          `{"eventType":"payment.confirmed"}`,
		Error:            "handler failure: boom",
	})

	require.NoError(t, err)
	require.Len(t, w.written, 1)
	assert.Equal(t, "order-service-payment-confirmed", string(w.written[0].Key))

	var got deadletter.Letter
	require.NoError(t, json.Unmarshal(w.written[0].Value, &got))
	assert.Equal(t, "payment.confirmed", got.RoutingKey)
	assert.Equal(t, "m-1", got.MessageID)
	assert.False(t, got.Timestamp.IsZero())
}

func TestSend_RetriesTransientFailures(t *testing.T) {
	w := &fakeWriter{failures: 2}
	s := newSink(w, 3)

	require.NoError(t, s.Send(context.Background(), deadletter.Letter{Queue: "q"}))
	assert.Equal(t, 3, w.calls)
	assert.Len(t, w.written, 1)
}

func TestSend_GivesUpAfterMaxAttempts(t *testing.T) {
	w := &fakeWriter{failures: 10}
	s := newSink(w, 3)

	err := s.Send(context.Background(), deadletter.Letter{Queue: "q"})

	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, w.calls)
}

func TestSend_StopsOnCancelledContext(t *testing.T) {
	w := &fakeWriter{failures: 10}
	s := newSink(w, 5)
	s.SetSleep(func(ctx context.Context, _ time.Duration) error { return context.Canceled })

	err := s.Send(context.Background(), deadletter.Letter{Queue: "q"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, w.calls)
}

func TestBackoff_IsCapped(t *testing.T) {
	s := newSink(&fakeWriter{}, 3)

	assert.Equal(t, time.Millisecond, s.Backoff(0))
	assert.Equal(t, 2*time.Millisecond, s.Backoff(1))
	assert.Equal(t, 4*time.Millisecond, s.Backoff(5))
}
