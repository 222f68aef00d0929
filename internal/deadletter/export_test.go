package deadletter

import (
	"context"
	"time"
)

// SetSleep replaces the backoff sleep so retries run instantly in tests.
func (s *KafkaSink) SetSleep(fn func(ctx context.Context, d time.Duration) error) {
	s.sleep = fn
}

func (s *KafkaSink) Backoff(attempt int) time.Duration {
	return s.backoff(attempt)
}
