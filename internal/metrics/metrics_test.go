package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncPublished("order.events", "order.created", true)
		m.IncConsumed("q", false)
		m.IncReconnect("success")
		m.SetBrokerConnected(true)
		m.IncInventoryOp("reserve", true)
		m.IncDeadLetter(false)
		m.ObserveHandler("q", 0.1)
	})
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.IncPublished("order.events", "order.created", true)
	m.IncPublished("order.events", "order.created", true)
	m.IncPublished("order.events", "order.created", false)
	m.SetBrokerConnected(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("order.events", "order.created", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("order.events", "order.created", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BrokerConnected))

	m.SetBrokerConnected(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BrokerConnected))
}
