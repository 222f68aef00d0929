package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/notifier"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/subscriber"
)

// EventPublisher sends an event and reports whether the broker accepted it.
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, event models.DomainEvent) bool
}

// EventSubscriber registers a handler on a durable queue.
type EventSubscriber interface {
	Subscribe(ctx context.Context, exchange, routingKey, queueName string, handler subscriber.Handler) error
}

const notifyTimeout = 10 * time.Second

// emitter runs the two independent side effects of a business event: the
// broker publish and the customer notification. A failure in one is logged
// and never prevents the other. Notifications run in the background, off
// the request path.
type emitter struct {
	publisher EventPublisher
	notifier  notifier.Notifier
	logger    logrus.FieldLogger
	now       func() time.Time
	pending   *sync.WaitGroup
}

func newEmitter(pub EventPublisher, n notifier.Notifier, component string) emitter {
	return emitter{
		publisher: pub,
		notifier:  n,
		logger:    logrus.WithField("component", component),
		now:       time.Now,
		pending:   &sync.WaitGroup{},
	}
}

func (e emitter) emit(ctx context.Context, exchange, eventType string, payload any, note *notifier.Notification) bool {
	published := e.publish(ctx, exchange, eventType, payload)
	if note != nil {
		e.pending.Add(1)
		go func(ctx context.Context, note notifier.Notification) {
			defer e.pending.Done()
			ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
			defer cancel()
			e.notify(ctx, eventType, note)
		}(context.WithoutCancel(ctx), *note)
	}
	return published
}

// WaitNotifications blocks until queued notifications finish or ctx ends.
func (e emitter) WaitNotifications(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for notifications: %w", ctx.Err())
	}
}

func (e emitter) publish(ctx context.Context, exchange, eventType string, payload any) bool {
	log := e.logger.WithFields(logrus.Fields{"exchange": exchange, "event_type": eventType})
	event, err := models.NewEvent(eventType, payload, e.now())
	if err != nil {
		log.WithError(err).Error("event not built")
		return false
	}
	if !e.publisher.Publish(ctx, exchange, eventType, event) {
		log.WithField("event_id", event.ID).Warn("event not published")
		return false
	}
	return true
}

func (e emitter) notify(ctx context.Context, eventType string, note notifier.Notification) {
	log := e.logger.WithFields(logrus.Fields{"event_type": eventType, "notification": note.Type})
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).Error("notification panicked")
		}
	}()
	if err := e.notifier.Send(ctx, note); err != nil {
		log.WithError(err).Warn("notification not sent")
	}
}
