package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/VivekGupta011/Distributed-Marketplace/config"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/deadletter"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/notifier"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/observability"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/publisher"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/subscriber"
)

// App holds the infrastructure shared by the three services. Each service
// adds its own repositories, handlers and subscriptions on top.
type App struct {
	config  *config.Config
	name    string
	log     *logrus.Entry
	Router  *gin.Engine
	Metrics *metrics.Metrics

	DB         *gorm.DB
	Broker     *broker.ConnectionManager
	Topics     *broker.TopicRegistry
	Publisher  *publisher.Publisher
	Subscriber *subscriber.Subscriber
	Notifier   notifier.Notifier

	deadLetters     *deadletter.KafkaSink
	notifications   []notificationQueue
	shutdownTracing func(context.Context) error
	server          *http.Server
}

// notificationQueue is implemented by the event services, which send
// notifications in the background.
type notificationQueue interface {
	WaitNotifications(ctx context.Context) error
}

func New(cfg *config.Config, defaultName string) *App {
	name := cfg.ServiceName(defaultName)
	return &App{
		config: cfg,
		name:   name,
		log:    observability.SetupLogger(name, cfg.APP.LogLevel),
	}
}

func (a *App) Name() string { return a.name }

// initInfrastructure wires logging, tracing, metrics, the broker layer and
// the HTTP router. A broker that is down at startup is not fatal: publishes
// report failure until the connection comes back.
func (a *App) initInfrastructure(ctx context.Context, reg prometheus.Registerer, dial broker.Dialer) error {
	shutdown, err := observability.SetupTracing(ctx, a.name, a.config.Telemetry)
	if err != nil {
		return fmt.Errorf("error setting up tracing: %w", err)
	}
	a.shutdownTracing = shutdown
	a.Metrics = metrics.New(reg)

	a.Broker = broker.NewConnectionManager(a.config.Broker.URL, dial,
		broker.ReconnectPolicy{
			Delay:       a.config.Broker.ReconnectDelay,
			MaxAttempts: a.config.Broker.ReconnectMaxAttempts,
		},
		broker.WithLogger(a.log),
		broker.WithMetrics(a.Metrics),
	)
	a.Topics = broker.NewTopicRegistry(a.Broker, models.Exchanges...)
	a.Publisher = publisher.New(a.Broker, a.Topics,
		publisher.WithLogger(a.log),
		publisher.WithMetrics(a.Metrics),
		publisher.WithTimeout(a.config.Broker.PublishTimeout),
		publisher.WithAppID(a.name),
	)

	subOpts := []subscriber.Option{subscriber.WithLogger(a.log), subscriber.WithMetrics(a.Metrics)}
	if a.config.Kafka.DLQEnabled() {
		a.deadLetters = deadletter.NewKafkaSink(a.config.Kafka.Brokers(), a.config.Kafka.DLQTopic,
			a.config.Kafka.GetRetryConfig(), a.log, a.Metrics)
		subOpts = append(subOpts, subscriber.WithDeadLetterSink(a.deadLetters))
	}
	a.Subscriber = subscriber.New(a.Broker, subOpts...)
	a.Notifier = notifier.New(a.config.Services.NotificationURL, a.config.Services.HTTPTimeout, a.log)

	if err := a.Topics.DeclareAll(ctx); err != nil {
		a.log.WithError(err).Error("broker not ready, exchanges will be declared on first publish")
	}

	a.Router = newRouter(a.name, a.Broker)
	return nil
}

func (a *App) initDatabase(entities ...any) error {
	db, err := a.config.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(entities...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	a.DB = db
	return nil
}

// Run serves HTTP until ctx is cancelled or the server fails, then shuts
// everything down.
func (a *App) Run(ctx context.Context) error {
	a.server = &http.Server{
		Addr:              ":" + a.config.APP.PORT,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.server.Addr).Info("http server listening")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown requested")
	case err := <-serveErr:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.APP.ShutdownTimeout)
	defer cancel()
	return errors.Join(runErr, a.Shutdown(shutdownCtx))
}

// Shutdown stops accepting requests, drains in-flight deliveries, closes
// the broker connection and flushes telemetry, in that order.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server: %w", err))
		}
	}
	for _, q := range a.notifications {
		if err := q.WaitNotifications(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.Subscriber != nil {
		if err := a.Subscriber.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("subscriber: %w", err))
		}
	}
	if a.Broker != nil {
		if err := a.Broker.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("broker: %w", err))
		}
	}
	if a.deadLetters != nil {
		if err := a.deadLetters.Close(); err != nil {
			errs = append(errs, fmt.Errorf("dead letter sink: %w", err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("database: %w", err))
			}
		}
	}
	if a.shutdownTracing != nil {
		if err := a.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracing: %w", err))
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		a.log.WithError(err).Error("shutdown finished with errors")
	} else {
		a.log.Info("shutdown complete")
	}
	return err
}
