package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors shared by every service. A nil *Metrics is
// valid and records nothing, which keeps tests free of registry setup.
type Metrics struct {
	EventsPublished     *prometheus.CounterVec
	EventsConsumed      *prometheus.CounterVec
	BrokerReconnects    *prometheus.CounterVec
	BrokerConnected     prometheus.Gauge
	InventoryOperations *prometheus.CounterVec
	DeadLetters         *prometheus.CounterVec
	HandlerDuration     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_published_total",
				Help: "Domain events handed to the broker",
			},
			[]string{"exchange", "routing_key", "result"},
		),
		EventsConsumed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_consumed_total",
				Help: "Deliveries settled by subscribers",
			},
			[]string{"queue", "result"},
		),
		BrokerReconnects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "broker_reconnects_total",
				Help: "Reconnect attempts against the message broker",
			},
			[]string{"result"},
		),
		BrokerConnected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "broker_connected",
				Help: "1 while the broker connection is open",
			},
		),
		InventoryOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_operations_total",
				Help: "Stock ledger mutations by operation and outcome",
			},
			[]string{"operation", "result"},
		),
		DeadLetters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dead_letters_total",
				Help: "Rejected deliveries forwarded to the dead-letter topic",
			},
			[]string{"result"},
		),
		HandlerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "event_handler_duration_seconds",
				Help:    "Time spent in subscriber handlers",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"queue"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.EventsPublished,
			m.EventsConsumed,
			m.BrokerReconnects,
			m.BrokerConnected,
			m.InventoryOperations,
			m.DeadLetters,
			m.HandlerDuration,
		)
	}
	return m
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func (m *Metrics) IncPublished(exchange, routingKey string, ok bool) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(exchange, routingKey, result(ok)).Inc()
}

func (m *Metrics) IncConsumed(queue string, ok bool) {
	if m == nil {
		return
	}
	m.EventsConsumed.WithLabelValues(queue, result(ok)).Inc()
}

func (m *Metrics) ObserveHandler(queue string, seconds float64) {
	if m == nil {
		return
	}
	m.HandlerDuration.WithLabelValues(queue).Observe(seconds)
}

func (m *Metrics) IncReconnect(outcome string) {
	if m == nil {
		return
	}
	m.BrokerReconnects.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetBrokerConnected(connected bool) {
	if m == nil {
		return
	}
	if connected {
		m.BrokerConnected.Set(1)
		return
	}
	m.BrokerConnected.Set(0)
}

func (m *Metrics) IncInventoryOp(operation string, ok bool) {
	if m == nil {
		return
	}
	m.InventoryOperations.WithLabelValues(operation, result(ok)).Inc()
}

func (m *Metrics) IncDeadLetter(ok bool) {
	if m == nil {
		return
	}
	m.DeadLetters.WithLabelValues(result(ok)).Inc()
}
