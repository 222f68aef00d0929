package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/observability"
)

var (
	ErrPublishRejected     = errors.New("publish rejected by broker")
	ErrExchangeNotDeclared = errors.New("exchange not declared")
	ErrFlowPaused          = errors.New("broker flow control active")
)

const defaultTimeout = 5 * time.Second

// ExchangeRegistry tells the publisher which exchanges exist and declares
// them when a connection comes up after a failed startup declaration.
type ExchangeRegistry interface {
	Declared(name string) bool
	DeclareAll(ctx context.Context) error
}

type Option func(*Publisher)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Publisher) { p.metrics = m }
}

func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithAppID stamps outgoing messages with the producing service name.
func WithAppID(id string) Option {
	return func(p *Publisher) { p.appID = id }
}

type Publisher struct {
	manager  *broker.ConnectionManager
	registry ExchangeRegistry
	logger   logrus.FieldLogger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	timeout  time.Duration
	appID    string
	now      func() time.Time
}

func New(manager *broker.ConnectionManager, registry ExchangeRegistry, opts ...Option) *Publisher {
	p := &Publisher{
		manager:  manager,
		registry: registry,
		logger:   logrus.StandardLogger().WithField("component", "publisher"),
		tracer:   otel.Tracer("github.com/VivekGupta011/Distributed-Marketplace/internal/publisher"),
		timeout:  defaultTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends event to exchange with routingKey as a persistent JSON
// message. It reports success as a bool and never returns an error or
// panics: callers treat publishing as best effort.
func (p *Publisher) Publish(ctx context.Context, exchange, routingKey string, event models.DomainEvent) (ok bool) {
	log := p.logger.WithFields(logrus.Fields{
		"exchange":    exchange,
		"routing_key": routingKey,
		"event_id":    event.ID,
	})
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("event publish panicked")
			ok = false
		}
		p.metrics.IncPublished(exchange, routingKey, ok)
	}()

	if err := p.publish(ctx, exchange, routingKey, event); err != nil {
		log.WithError(err).Error("event publish failed")
		return false
	}
	log.Debug("event published")
	return true
}

func (p *Publisher) publish(ctx context.Context, exchange, routingKey string, event models.DomainEvent) error {
	ch, err := p.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	if !p.registry.Declared(exchange) {
		if err := p.registry.DeclareAll(ctx); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrExchangeNotDeclared, exchange, err)
		}
		if !p.registry.Declared(exchange) {
			return fmt.Errorf("%w: %s", ErrExchangeNotDeclared, exchange)
		}
	}
	if p.manager.FlowPaused() {
		return ErrFlowPaused
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now().UTC()
	}
	if event.EventType == "" {
		event.EventType = routingKey
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling event: %w", err)
	}

	ctx, span := p.tracer.Start(ctx, exchange+" publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination.name", exchange),
			attribute.String("messaging.rabbitmq.destination.routing_key", routingKey),
			attribute.String("messaging.message.id", event.ID),
		),
	)
	defer span.End()

	headers := amqp.Table{}
	observability.Inject(ctx, headers)

	pubCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = ch.PublishWithContext(pubCtx, exchange, routingKey, false, false, amqp.Publishing{
		Headers:      headers,
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.Timestamp,
		Type:         event.EventType,
		AppId:        p.appID,
		Body:         body,
	})
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrPublishRejected, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
