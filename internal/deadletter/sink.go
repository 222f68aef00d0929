package deadletter

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/config"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
)

// Letter describes a delivery the broker dropped after a handler failure.
type Letter struct {
	OriginalExchange string    `json:"originalExchange"`
	RoutingKey       string    `json:"routingKey"`
	Queue            string    `json:"queue"`
	MessageID        string    `json:"messageId,omitempty"`
	Payload          string    `json:"payload"`
	Error            string    `json:"error"`
	Redelivered      bool      `json:"redelivered"`
	Timestamp        time.Time `json:"timestamp"`
}

// Writer is the subset of *kafka.Writer the sink needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaSink struct {
	writer  Writer
	retry   config.RetryConfig
	logger  logrus.FieldLogger
	metrics *metrics.Metrics
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewKafkaSink(brokers []string, topic string, retry config.RetryConfig, logger logrus.FieldLogger, m *metrics.Metrics) *KafkaSink {
	return NewKafkaSinkWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}, retry, logger, m)
}

func NewKafkaSinkWithWriter(w Writer, retry config.RetryConfig, logger logrus.FieldLogger, m *metrics.Metrics) *KafkaSink {
	if retry.MaxAttempts == 0 {
		retry.MaxAttempts = 5
	}
	if retry.BaseDelay == 0 {
		retry.BaseDelay = 100 * time.Millisecond
	}
	if retry.MaxDelay == 0 {
		retry.MaxDelay = 10 * time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &KafkaSink{
		writer:  w,
		retry:   retry,
		logger:  logger.WithField("component", "dead-letter"),
		metrics: m,
		sleep:   sleepCtx,
	}
}

// Send writes the letter keyed by queue so letters of one queue stay ordered.
func (s *KafkaSink) Send(ctx context.Context, letter Letter) error {
	if letter.Timestamp.IsZero() {
		letter.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(letter)
	if err != nil {
		return fmt.Errorf("error marshaling dead letter: %w", err)
	}
	err = s.writeWithRetry(ctx, kafka.Message{Key: []byte(letter.Queue), Value: data})
	s.metrics.IncDeadLetter(err == nil)
	return err
}

func (s *KafkaSink) writeWithRetry(ctx context.Context, msg kafka.Message) error {
	var lastErr error
	for attempt := 0; attempt < s.retry.MaxAttempts; attempt++ {
		err := s.writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				s.logger.WithField("attempts", attempt+1).Info("dead letter written after retry")
			}
			return nil
		}
		lastErr = err
		if attempt == s.retry.MaxAttempts-1 {
			break
		}

		delay := s.backoff(attempt)
		s.logger.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"max":     s.retry.MaxAttempts,
			"delay":   delay,
		}).Warn("dead letter write failed, retrying")

		if err := s.sleep(ctx, delay); err != nil {
			return fmt.Errorf("context cancelled during retry: %w", err)
		}
	}
	return fmt.Errorf("failed to write dead letter after %d attempts: %w", s.retry.MaxAttempts, lastErr)
}

func (s *KafkaSink) backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * s.retry.BaseDelay
	if delay > s.retry.MaxDelay {
		delay = s.retry.MaxDelay
	}
	if s.retry.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}
	return delay
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
