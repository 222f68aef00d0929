package broker_test

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker/brokertest"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newManager(fake *brokertest.Broker, maxAttempts int) *broker.ConnectionManager {
	return broker.NewConnectionManager("amqp://test", fake.Dial,
		broker.ReconnectPolicy{Delay: 10 * time.Millisecond, MaxAttempts: maxAttempts},
		broker.WithLogger(quietLogger()),
	)
}

func TestConnect_IsIdempotent(t *testing.T) {
	fake := brokertest.New()
	m := newManager(fake, 3)
	defer m.Close(context.Background())

	first, err := m.Connect(context.Background())
	require.NoError(t, err)
	second, err := m.Connect(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, fake.Dials())
	assert.Equal(t, broker.StateConnected, m.State())
}

func TestAcquire_ConnectsLazily(t *testing.T) {
	fake := brokertest.New()
	m := newManager(fake, 3)
	defer m.Close(context.Background())

	assert.Equal(t, broker.StateDisconnected, m.State())

	ch, err := m.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ch)
	assert.True(t, m.IsConnected())
}

func TestConnect_DialFailure(t *testing.T) {
	fake := brokertest.New()
	fake.FailNextDials(1)
	m := newManager(fake, 3)
	defer m.Close(context.Background())

	_, err := m.Connect(context.Background())

	assert.ErrorIs(t, err, broker.ErrBrokerUnavailable)
	assert.Equal(t, broker.StateDisconnected, m.State())

	_, err = m.Connect(context.Background())
	assert.NoError(t, err)
}

func TestReconnect_RunsHooksInOrder(t *testing.T) {
	fake := brokertest.New()
	m := newManager(fake, 5)
	defer m.Close(context.Background())

	var order []string
	var calls atomic.Int32
	m.OnReconnect("first", func(context.Context, broker.Channel) error {
		order = append(order, "first")
		calls.Add(1)
		return nil
	})
	m.OnReconnect("second", func(context.Context, broker.Channel) error {
		order = append(order, "second")
		calls.Add(1)
		return nil
	})

	_, err := m.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(0), calls.Load(), "hooks only run on reconnect")

	fake.DropConnections()

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, waitFor, tick)
	assert.Eventually(t, m.IsConnected, waitFor, tick)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 2, fake.Dials())
}

func TestReconnect_StopsAfterMaxAttempts(t *testing.T) {
	fake := brokertest.New()
	m := newManager(fake, 3)
	defer m.Close(context.Background())

	_, err := m.Connect(context.Background())
	require.NoError(t, err)

	fake.FailNextDials(-1)
	fake.DropConnections()

	assert.Eventually(t, m.Exhausted, waitFor, tick)
	assert.Equal(t, broker.StateDisconnected, m.State())
	assert.Equal(t, 3, m.Attempts())
	assert.Equal(t, 4, fake.Dials())

	_, err = m.Acquire(context.Background())
	assert.ErrorIs(t, err, broker.ErrBrokerUnavailable)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 4, fake.Dials(), "no dialing once the budget is spent")

	fake.FailNextDials(0)
	_, err = m.Connect(context.Background())
	require.NoError(t, err)
	assert.False(t, m.Exhausted())

	_, err = m.Acquire(context.Background())
	assert.NoError(t, err)
}

func TestAcquire_UnavailableWhileReconnecting(t *testing.T) {
	fake := brokertest.New()
	m := broker.NewConnectionManager("amqp://test", fake.Dial,
		broker.ReconnectPolicy{Delay: time.Hour, MaxAttempts: 1},
		broker.WithLogger(quietLogger()),
	)

	_, err := m.Connect(context.Background())
	require.NoError(t, err)

	fake.DropConnections()
	assert.Eventually(t, func() bool { return m.State() == broker.StateReconnecting }, waitFor, tick)

	_, err = m.Acquire(context.Background())
	assert.ErrorIs(t, err, broker.ErrBrokerUnavailable)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, m.Close(ctx))
}

func TestFlowControl_PausesPublishing(t *testing.T) {
	fake := brokertest.New()
	m := newManager(fake, 3)
	defer m.Close(context.Background())

	_, err := m.Connect(context.Background())
	require.NoError(t, err)

	fake.SetFlow(false)
	assert.Eventually(t, m.FlowPaused, waitFor, tick)

	fake.SetFlow(true)
	assert.Eventually(t, func() bool { return !m.FlowPaused() }, waitFor, tick)
}

func TestClose_SuppressesReconnect(t *testing.T) {
	fake := brokertest.New()
	m := newManager(fake, 3)

	_, err := m.Connect(context.Background())
	require.NoError(t, err)

	require.NoError(t, m.Close(context.Background()))
	assert.Equal(t, broker.StateDisconnected, m.State())

	fake.DropConnections()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, fake.Dials())

	_, err = m.Acquire(context.Background())
	assert.ErrorIs(t, err, broker.ErrBrokerUnavailable)
	assert.NoError(t, m.Close(context.Background()))
}

func TestAcquire_DoesNotWaitForReconnectDial(t *testing.T) {
	fake := brokertest.New()
	var slow atomic.Bool
	release := make(chan struct{})
	dial := func(url string) (broker.Connection, error) {
		if slow.Load() {
			<-release
		}
		return fake.Dial(url)
	}
	m := broker.NewConnectionManager("amqp://test", dial,
		broker.ReconnectPolicy{Delay: time.Millisecond, MaxAttempts: 3},
		broker.WithLogger(quietLogger()),
	)
	defer m.Close(context.Background())

	_, err := m.Connect(context.Background())
	require.NoError(t, err)

	slow.Store(true)
	fake.DropConnections()
	require.Eventually(t, func() bool { return m.Attempts() == 1 }, waitFor, tick)

	start := time.Now()
	_, err = m.Acquire(context.Background())
	assert.ErrorIs(t, err, broker.ErrBrokerUnavailable)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, broker.StateReconnecting, m.State())

	slow.Store(false)
	close(release)
	assert.Eventually(t, m.IsConnected, waitFor, tick)
}
