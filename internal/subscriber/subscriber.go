package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/deadletter"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/observability"
)

var (
	ErrHandlerFailure = errors.New("handler failure")
	ErrMalformedEvent = errors.New("malformed event")
	ErrClosed         = errors.New("subscriber closed")
)

const deadLetterTimeout = 10 * time.Second

// Handler processes one decoded event. A non-nil error drops the message.
type Handler func(ctx context.Context, event models.DomainEvent) error

// DeadLetterSink receives messages that were rejected without requeue.
type DeadLetterSink interface {
	Send(ctx context.Context, letter deadletter.Letter) error
}

// QueueName derives the durable queue of a service for one routing key,
// e.g. order-service + payment.confirmed -> order-service-payment-confirmed.
func QueueName(service, routingKey string) string {
	return service + "-" + strings.ReplaceAll(routingKey, ".", "-")
}

type Option func(*Subscriber)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Subscriber) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Subscriber) { s.metrics = m }
}

func WithDeadLetterSink(sink DeadLetterSink) Option {
	return func(s *Subscriber) { s.sink = sink }
}

type subscription struct {
	exchange   string
	routingKey string
	queue      string
	handler    Handler
}

type Subscriber struct {
	manager *broker.ConnectionManager
	logger  logrus.FieldLogger
	metrics *metrics.Metrics
	sink    DeadLetterSink
	tracer  trace.Tracer

	mu      sync.Mutex
	subs    []*subscription
	closing bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

func New(manager *broker.ConnectionManager, opts ...Option) *Subscriber {
	s := &Subscriber{
		manager: manager,
		logger:  logrus.StandardLogger().WithField("component", "subscriber"),
		tracer:  otel.Tracer("github.com/VivekGupta011/Distributed-Marketplace/internal/subscriber"),
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	manager.OnReconnect("subscriber", s.restore)
	return s
}

// Subscribe binds a durable queue to exchange with routingKey and starts
// consuming it with prefetch 1 and manual acknowledgements. The setup is
// repeated automatically after every reconnect.
func (s *Subscriber) Subscribe(ctx context.Context, exchange, routingKey, queueName string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("%w: nil handler for %s", models.ErrInvalidRequest, queueName)
	}
	ch, err := s.manager.Acquire(ctx)
	if err != nil {
		return err
	}

	sub := &subscription{exchange: exchange, routingKey: routingKey, queue: queueName, handler: handler}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return ErrClosed
	}
	if err := s.startLocked(ch, sub); err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	s.logger.WithFields(logrus.Fields{
		"exchange":    exchange,
		"routing_key": routingKey,
		"queue":       queueName,
	}).Info("subscribed")
	return nil
}

func (s *Subscriber) restore(_ context.Context, ch broker.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return nil
	}
	var errs []error
	for _, sub := range s.subs {
		if err := s.startLocked(ch, sub); err != nil {
			errs = append(errs, err)
			continue
		}
		s.logger.WithField("queue", sub.queue).Info("subscription restored")
	}
	return errors.Join(errs...)
}

func (s *Subscriber) startLocked(ch broker.Channel, sub *subscription) error {
	if _, err := ch.QueueDeclare(sub.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", sub.queue, err)
	}
	if err := ch.QueueBind(sub.queue, sub.routingKey, sub.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s to %s/%s: %w", sub.queue, sub.exchange, sub.routingKey, err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}
	deliveries, err := ch.Consume(sub.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", sub.queue, err)
	}
	s.wg.Add(1)
	go s.consume(sub, deliveries)
	return nil
}

func (s *Subscriber) consume(sub *subscription, deliveries <-chan amqp.Delivery) {
	defer s.wg.Done()
	for {
		select {
		case <-s.stop:
			return
		case d, ok := <-deliveries:
			if !ok {
				s.logger.WithField("queue", sub.queue).Debug("delivery channel closed")
				return
			}
			s.handle(sub, d)
		}
	}
}

func (s *Subscriber) handle(sub *subscription, d amqp.Delivery) {
	started := time.Now()
	ctx := observability.Extract(context.Background(), d.Headers)
	ctx, span := s.tracer.Start(ctx, sub.queue+" process",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination.name", sub.exchange),
			attribute.String("messaging.rabbitmq.destination.routing_key", d.RoutingKey),
			attribute.String("messaging.message.id", d.MessageId),
		),
	)
	defer span.End()

	log := s.logger.WithFields(logrus.Fields{
		"queue":       sub.queue,
		"routing_key": d.RoutingKey,
		"message_id":  d.MessageId,
		"redelivered": d.Redelivered,
	})

	err := invoke(ctx, sub.handler, d.Body)
	s.metrics.ObserveHandler(sub.queue, time.Since(started).Seconds())

	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			log.WithError(ackErr).Error("ack failed")
		}
		s.metrics.IncConsumed(sub.queue, true)
		return
	}

	err = fmt.Errorf("%w: %w", ErrHandlerFailure, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.WithError(err).Error("event handling failed, message rejected")

	if rejErr := d.Reject(false); rejErr != nil {
		log.WithError(rejErr).Error("reject failed")
	}
	s.metrics.IncConsumed(sub.queue, false)
	s.deadLetter(ctx, sub, d, err, log)
}

func (s *Subscriber) deadLetter(ctx context.Context, sub *subscription, d amqp.Delivery, cause error, log logrus.FieldLogger) {
	if s.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, deadLetterTimeout)
	defer cancel()
	err := s.sink.Send(ctx, deadletter.Letter{
		OriginalExchange: d.Exchange,
		RoutingKey:       d.RoutingKey,
		Queue:            sub.queue,
		MessageID:        d.MessageId,
		Payload:          string(d.Body),
		Error:            cause.Error(),
		Redelivered:      d.Redelivered,
		Timestamp:        time.Now().UTC(),
	})
	if err != nil {
		log.WithError(err).Error("dead letter not recorded")
	}
}

func invoke(ctx context.Context, h Handler, body []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	var event models.DomainEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.EventType == "" {
		return fmt.Errorf("%w: missing eventType", ErrMalformedEvent)
	}
	return h(ctx, event)
}

// Close stops every receive loop once its in-flight message is settled.
// Unsettled deliveries go back to the queue when the channel closes.
func (s *Subscriber) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return nil
	}
	s.closing = true
	close(s.stop)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("subscriber stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for subscriber loops: %w", ctx.Err())
	}
}
