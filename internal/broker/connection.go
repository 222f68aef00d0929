package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
)

// ErrBrokerUnavailable is returned when no channel can be handed out.
var ErrBrokerUnavailable = errors.New("broker unavailable")

type State string

const (
	StateDisconnected State = "disconnected"
	StateConnected    State = "connected"
	StateReconnecting State = "reconnecting"
)

// ReconnectPolicy is a fixed-delay, bounded retry budget.
type ReconnectPolicy struct {
	Delay       time.Duration
	MaxAttempts int
}

// Hook re-establishes state that lives on a channel (topology, consumers).
type Hook func(ctx context.Context, ch Channel) error

type namedHook struct {
	name string
	fn   Hook
}

type Option func(*ConnectionManager)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *ConnectionManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *ConnectionManager) {
		m.metrics = mt
	}
}

// ConnectionManager owns the single connection/channel pair of a process.
// It is constructed once at startup, shared by publishers and subscribers,
// and closed on shutdown.
type ConnectionManager struct {
	url     string
	dial    Dialer
	policy  ReconnectPolicy
	logger  logrus.FieldLogger
	metrics *metrics.Metrics

	// dialMu serializes manual connects. mu guards state and is never held
	// across a dial or a hook.
	dialMu        sync.Mutex
	mu            sync.Mutex
	conn          Connection
	ch            Channel
	state         State
	attempts      int
	exhausted     bool
	everConnected bool
	paused        bool
	shutdown      bool
	hooks         []namedHook

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewConnectionManager(url string, dial Dialer, policy ReconnectPolicy, opts ...Option) *ConnectionManager {
	if policy.Delay <= 0 {
		policy.Delay = 5 * time.Second
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 10
	}
	m := &ConnectionManager{
		url:    url,
		dial:   dial,
		policy: policy,
		logger: logrus.StandardLogger().WithField("component", "broker"),
		state:  StateDisconnected,
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnReconnect registers a hook that runs, in registration order, every time
// a connection is re-established after a previous one was lost.
func (m *ConnectionManager) OnReconnect(name string, hook Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, namedHook{name: name, fn: hook})
}

// Connect returns the live channel, dialing if needed. A successful call
// clears an exhausted retry budget.
func (m *ConnectionManager) Connect(ctx context.Context) (Channel, error) {
	m.dialMu.Lock()
	defer m.dialMu.Unlock()

	m.mu.Lock()
	switch {
	case m.shutdown:
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: connection manager is closed", ErrBrokerUnavailable)
	case m.state == StateConnected && m.ch != nil:
		ch := m.ch
		m.mu.Unlock()
		return ch, nil
	case m.state == StateReconnecting:
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: reconnect in progress", ErrBrokerUnavailable)
	}
	m.mu.Unlock()

	ch, err := m.establish(ctx)
	if err != nil {
		m.logger.WithError(err).Error("broker connect failed")
		return nil, err
	}
	m.mu.Lock()
	m.exhausted = false
	m.mu.Unlock()
	return ch, nil
}

// Acquire hands out the channel for publish/subscribe calls. It connects
// lazily on first use but never dials while a reconnect loop owns the
// connection or after the retry budget is exhausted.
func (m *ConnectionManager) Acquire(ctx context.Context) (Channel, error) {
	m.mu.Lock()
	switch {
	case m.state == StateConnected && m.ch != nil:
		ch := m.ch
		m.mu.Unlock()
		return ch, nil
	case m.shutdown:
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: connection manager is closed", ErrBrokerUnavailable)
	case m.state == StateReconnecting:
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: reconnect in progress", ErrBrokerUnavailable)
	case m.exhausted:
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: reconnect attempts exhausted", ErrBrokerUnavailable)
	}
	m.mu.Unlock()
	return m.Connect(ctx)
}

func (m *ConnectionManager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *ConnectionManager) IsConnected() bool {
	return m.State() == StateConnected
}

// Attempts is the number of reconnect attempts made since the last loss.
func (m *ConnectionManager) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

func (m *ConnectionManager) Exhausted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exhausted
}

// FlowPaused reports whether the broker asked this channel to stop publishing.
func (m *ConnectionManager) FlowPaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

// establish dials outside the lock and only takes it to install the new
// pair, so Acquire keeps answering while a dial is in flight.
func (m *ConnectionManager) establish(ctx context.Context) (Channel, error) {
	conn, err := m.dial(m.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrokerUnavailable, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrBrokerUnavailable, err)
	}

	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: connection manager is closed", ErrBrokerUnavailable)
	}
	reconnected := m.everConnected
	m.conn, m.ch = conn, ch
	m.everConnected = true
	m.paused = false
	m.attempts = 0
	m.setStateLocked(StateConnected)

	connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
	chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
	flow := ch.NotifyFlow(make(chan bool, 1))
	m.wg.Add(1)
	go m.watch(conn, connClosed, chClosed, flow)
	hooks := append([]namedHook(nil), m.hooks...)
	m.mu.Unlock()

	if reconnected {
		m.runHooks(ctx, hooks, ch)
	}
	return ch, nil
}

func (m *ConnectionManager) runHooks(ctx context.Context, hooks []namedHook, ch Channel) {
	for _, h := range hooks {
		if err := h.fn(ctx, ch); err != nil {
			m.logger.WithError(err).WithField("hook", h.name).Error("reconnect hook failed")
		}
	}
}

func (m *ConnectionManager) setStateLocked(s State) {
	if m.state == s {
		return
	}
	m.logger.WithFields(logrus.Fields{"from": m.state, "to": s}).Info("broker state changed")
	m.state = s
	m.metrics.SetBrokerConnected(s == StateConnected)
}

func (m *ConnectionManager) watch(conn Connection, connClosed, chClosed <-chan *amqp.Error, flow <-chan bool) {
	defer m.wg.Done()
	for {
		select {
		case active, ok := <-flow:
			if !ok {
				flow = nil
				continue
			}
			m.mu.Lock()
			if m.conn == conn {
				m.paused = !active
				m.logger.WithField("active", active).Warn("broker flow control")
			}
			m.mu.Unlock()
		case reason := <-chClosed:
			m.handleLoss(conn, reason)
			return
		case reason := <-connClosed:
			m.handleLoss(conn, reason)
			return
		}
	}
}

func (m *ConnectionManager) handleLoss(conn Connection, reason *amqp.Error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown || m.conn != conn {
		return
	}
	m.conn, m.ch = nil, nil
	_ = conn.Close()

	entry := m.logger
	if reason != nil {
		entry = entry.WithFields(logrus.Fields{"code": reason.Code, "reason": reason.Reason})
	}
	entry.Warn("broker connection lost, scheduling reconnect")

	m.attempts = 0
	m.setStateLocked(StateReconnecting)
	m.wg.Add(1)
	go m.reconnectLoop()
}

func (m *ConnectionManager) reconnectLoop() {
	defer m.wg.Done()
	for {
		m.mu.Lock()
		if m.shutdown {
			m.mu.Unlock()
			return
		}
		if m.attempts >= m.policy.MaxAttempts {
			m.exhausted = true
			m.setStateLocked(StateDisconnected)
			m.logger.WithField("attempts", m.attempts).Error("broker reconnect attempts exhausted")
			m.mu.Unlock()
			return
		}
		m.mu.Unlock()

		select {
		case <-time.After(m.policy.Delay):
		case <-m.stop:
			return
		}

		m.mu.Lock()
		if m.shutdown {
			m.mu.Unlock()
			return
		}
		m.attempts++
		attempt := m.attempts
		m.mu.Unlock()

		_, err := m.establish(context.Background())
		if err == nil {
			m.logger.WithField("attempt", attempt).Info("broker reconnected")
			m.metrics.IncReconnect("success")
			return
		}
		m.logger.WithError(err).WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": m.policy.MaxAttempts,
		}).Warn("broker reconnect attempt failed")
		m.metrics.IncReconnect("failure")
	}
}

// Close closes the channel, then the connection, and waits for background
// goroutines until ctx expires.
func (m *ConnectionManager) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		return nil
	}
	m.shutdown = true
	close(m.stop)
	ch, conn := m.ch, m.conn
	m.ch, m.conn = nil, nil
	m.setStateLocked(StateDisconnected)
	m.mu.Unlock()

	var errs []error
	if ch != nil {
		if err := ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		errs = append(errs, fmt.Errorf("waiting for broker goroutines: %w", ctx.Err()))
	}

	m.logger.Info("broker connection closed")
	return errors.Join(errs...)
}
