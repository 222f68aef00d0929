// Package brokertest provides an in-memory AMQP broker for tests. It models
// topic exchanges, durable queues, prefetch and manual acknowledgements
// closely enough to exercise the messaging layer without RabbitMQ.
package brokertest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
)

var ErrDialRefused = errors.New("dial tcp: connection refused")

// Published is a message accepted by an exchange.
type Published struct {
	Exchange   string
	RoutingKey string
	Msg        amqp.Publishing
}

type exchange struct {
	kind    string
	durable bool
}

type binding struct {
	exchange string
	pattern  string
}

type message struct {
	exchange    string
	routingKey  string
	pub         amqp.Publishing
	redelivered bool
}

type inflight struct {
	msg      message
	consumer *consumer
}

type queue struct {
	name      string
	durable   bool
	bindings  []binding
	ready     []message
	unacked   map[uint64]inflight
	consumers []*consumer
	next      int
}

type consumer struct {
	ch         *Channel
	tag        string
	autoAck    bool
	deliveries chan amqp.Delivery
	inflight   int
}

// Broker is safe for concurrent use.
type Broker struct {
	mu         sync.Mutex
	exchanges  map[string]exchange
	queues     map[string]*queue
	conns      []*Conn
	published  []Published
	declares   map[string]int
	failDials  int
	dials      int
	publishErr error
	tag        uint64
	anon       int
}

func New() *Broker {
	return &Broker{
		exchanges: map[string]exchange{},
		queues:    map[string]*queue{},
		declares:  map[string]int{},
	}
}

// Dial satisfies broker.Dialer.
func (b *Broker) Dial(_ string) (broker.Connection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dials++
	if b.failDials > 0 {
		b.failDials--
		return nil, ErrDialRefused
	}
	c := &Conn{b: b}
	b.conns = append(b.conns, c)
	return c, nil
}

// FailNextDials makes the next n dials fail. A negative n fails every dial
// until FailNextDials(0) is called.
func (b *Broker) FailNextDials(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 {
		n = int(^uint(0) >> 1)
	}
	b.failDials = n
}

func (b *Broker) Dials() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dials
}

// FailPublishes makes every publish return err until called with nil.
func (b *Broker) FailPublishes(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.publishErr = err
}

// DropConnections simulates the network going away: every open connection
// reports a forced close and unacknowledged deliveries are requeued.
func (b *Broker) DropConnections() {
	b.mu.Lock()
	defer b.mu.Unlock()
	reason := &amqp.Error{Code: amqp.ConnectionForced, Reason: "CONNECTION_FORCED - broker forced connection closure", Server: true}
	for _, c := range b.conns {
		if !c.closed {
			c.closeLocked(reason)
		}
	}
}

// SetFlow emits a flow notification on every open channel.
func (b *Broker) SetFlow(active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.conns {
		for _, ch := range c.channels {
			if ch.closed {
				continue
			}
			for _, f := range ch.flows {
				select {
				case f <- active:
				default:
				}
			}
		}
	}
}

// Inject publishes as an external producer would.
func (b *Broker) Inject(exchangeName, routingKey string, msg amqp.Publishing) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.routeLocked(exchangeName, routingKey, msg)
}

func (b *Broker) Published() []Published {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Published(nil), b.published...)
}

func (b *Broker) ExchangeDeclared(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.exchanges[name]
	return ok
}

// ExchangeDeclares counts ExchangeDeclare calls for name.
func (b *Broker) ExchangeDeclares(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.declares[name]
}

func (b *Broker) QueueExists(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.queues[name]
	return ok
}

// Ready is the number of messages waiting for a consumer.
func (b *Broker) Ready(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if q, ok := b.queues[name]; ok {
		return len(q.ready)
	}
	return 0
}

// Unacked is the number of delivered but unsettled messages.
func (b *Broker) Unacked(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if q, ok := b.queues[name]; ok {
		return len(q.unacked)
	}
	return 0
}

// Depth is Ready plus Unacked.
func (b *Broker) Depth(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if q, ok := b.queues[name]; ok {
		return len(q.ready) + len(q.unacked)
	}
	return 0
}

func (b *Broker) Bindings(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if q, ok := b.queues[name]; ok {
		return len(q.bindings)
	}
	return 0
}

func (b *Broker) Consumers(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if q, ok := b.queues[name]; ok {
		return len(q.consumers)
	}
	return 0
}

func (b *Broker) routeLocked(exchangeName, routingKey string, msg amqp.Publishing) error {
	if b.publishErr != nil {
		return b.publishErr
	}
	if _, ok := b.exchanges[exchangeName]; !ok {
		return &amqp.Error{Code: amqp.NotFound, Reason: fmt.Sprintf("NOT_FOUND - no exchange '%s'", exchangeName)}
	}
	b.published = append(b.published, Published{Exchange: exchangeName, RoutingKey: routingKey, Msg: msg})
	for _, q := range b.queues {
		for _, bd := range q.bindings {
			if bd.exchange == exchangeName && MatchTopic(bd.pattern, routingKey) {
				q.ready = append(q.ready, message{exchange: exchangeName, routingKey: routingKey, pub: msg})
				b.dispatchLocked(q)
				break
			}
		}
	}
	return nil
}

func (b *Broker) dispatchLocked(q *queue) {
	for len(q.ready) > 0 && len(q.consumers) > 0 {
		c := b.pickLocked(q)
		if c == nil {
			return
		}
		msg := q.ready[0]
		q.ready = q.ready[1:]
		b.tag++
		d := amqp.Delivery{
			Acknowledger:    c.ch,
			Headers:         msg.pub.Headers,
			ContentType:     msg.pub.ContentType,
			ContentEncoding: msg.pub.ContentEncoding,
			DeliveryMode:    msg.pub.DeliveryMode,
			CorrelationId:   msg.pub.CorrelationId,
			MessageId:       msg.pub.MessageId,
			Timestamp:       msg.pub.Timestamp,
			Type:            msg.pub.Type,
			AppId:           msg.pub.AppId,
			ConsumerTag:     c.tag,
			DeliveryTag:     b.tag,
			Redelivered:     msg.redelivered,
			Exchange:        msg.exchange,
			RoutingKey:      msg.routingKey,
			Body:            msg.pub.Body,
		}
		if !c.autoAck {
			q.unacked[b.tag] = inflight{msg: msg, consumer: c}
			c.inflight++
		}
		c.deliveries <- d
	}
}

func (b *Broker) pickLocked(q *queue) *consumer {
	for i := 0; i < len(q.consumers); i++ {
		c := q.consumers[(q.next+i)%len(q.consumers)]
		if len(c.deliveries) == cap(c.deliveries) {
			continue
		}
		if !c.autoAck && c.ch.prefetch > 0 && c.inflight >= c.ch.prefetch {
			continue
		}
		q.next = (q.next + i + 1) % len(q.consumers)
		return c
	}
	return nil
}

func (b *Broker) settleLocked(tag uint64, requeue bool) error {
	for _, q := range b.queues {
		in, ok := q.unacked[tag]
		if !ok {
			continue
		}
		delete(q.unacked, tag)
		in.consumer.inflight--
		if requeue {
			in.msg.redelivered = true
			q.ready = append([]message{in.msg}, q.ready...)
		}
		b.dispatchLocked(q)
		return nil
	}
	return &amqp.Error{Code: amqp.PreconditionFailed, Reason: fmt.Sprintf("PRECONDITION_FAILED - unknown delivery tag %d", tag)}
}

// Conn is a fake broker.Connection.
type Conn struct {
	b        *Broker
	closed   bool
	notify   []chan *amqp.Error
	channels []*Channel
}

func (c *Conn) Channel() (broker.Channel, error) {
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	if c.closed {
		return nil, amqp.ErrClosed
	}
	ch := &Channel{b: c.b, conn: c}
	c.channels = append(c.channels, ch)
	return ch, nil
}

func (c *Conn) NotifyClose(n chan *amqp.Error) chan *amqp.Error {
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	if c.closed {
		close(n)
		return n
	}
	c.notify = append(c.notify, n)
	return n
}

func (c *Conn) Close() error {
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	if c.closed {
		return amqp.ErrClosed
	}
	c.closeLocked(nil)
	return nil
}

func (c *Conn) closeLocked(reason *amqp.Error) {
	c.closed = true
	for _, ch := range c.channels {
		if !ch.closed {
			ch.closeLocked(reason)
		}
	}
	for _, n := range c.notify {
		if reason != nil {
			select {
			case n <- reason:
			default:
			}
		}
		close(n)
	}
	c.notify = nil
}

// Channel is a fake broker.Channel and amqp.Acknowledger.
type Channel struct {
	b         *Broker
	conn      *Conn
	closed    bool
	prefetch  int
	consumers []*consumer
	notify    []chan *amqp.Error
	flows     []chan bool
}

func (ch *Channel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	ch.b.declares[name]++
	if ex, ok := ch.b.exchanges[name]; ok {
		if ex.kind != kind || ex.durable != durable {
			return &amqp.Error{Code: amqp.PreconditionFailed, Reason: fmt.Sprintf("PRECONDITION_FAILED - inequivalent arg for exchange '%s'", name)}
		}
		return nil
	}
	ch.b.exchanges[name] = exchange{kind: kind, durable: durable}
	return nil
}

func (ch *Channel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.Queue{}, amqp.ErrClosed
	}
	if name == "" {
		ch.b.anon++
		name = fmt.Sprintf("amq.gen-%d", ch.b.anon)
	}
	q, ok := ch.b.queues[name]
	if ok {
		if q.durable != durable {
			return amqp.Queue{}, &amqp.Error{Code: amqp.PreconditionFailed, Reason: fmt.Sprintf("PRECONDITION_FAILED - inequivalent arg 'durable' for queue '%s'", name)}
		}
	} else {
		q = &queue{name: name, durable: durable, unacked: map[uint64]inflight{}}
		ch.b.queues[name] = q
	}
	return amqp.Queue{Name: name, Messages: len(q.ready), Consumers: len(q.consumers)}, nil
}

func (ch *Channel) QueueBind(name, key, exchangeName string, _ bool, _ amqp.Table) error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	q, ok := ch.b.queues[name]
	if !ok {
		return &amqp.Error{Code: amqp.NotFound, Reason: fmt.Sprintf("NOT_FOUND - no queue '%s'", name)}
	}
	if _, ok := ch.b.exchanges[exchangeName]; !ok {
		return &amqp.Error{Code: amqp.NotFound, Reason: fmt.Sprintf("NOT_FOUND - no exchange '%s'", exchangeName)}
	}
	for _, bd := range q.bindings {
		if bd.exchange == exchangeName && bd.pattern == key {
			return nil
		}
	}
	q.bindings = append(q.bindings, binding{exchange: exchangeName, pattern: key})
	return nil
}

func (ch *Channel) Qos(prefetchCount, _ int, _ bool) error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	ch.prefetch = prefetchCount
	return nil
}

func (ch *Channel) Consume(queueName, tag string, autoAck, _, _, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return nil, amqp.ErrClosed
	}
	q, ok := ch.b.queues[queueName]
	if !ok {
		return nil, &amqp.Error{Code: amqp.NotFound, Reason: fmt.Sprintf("NOT_FOUND - no queue '%s'", queueName)}
	}
	if tag == "" {
		ch.b.anon++
		tag = fmt.Sprintf("ctag-%d", ch.b.anon)
	}
	c := &consumer{ch: ch, tag: tag, autoAck: autoAck, deliveries: make(chan amqp.Delivery, 64)}
	q.consumers = append(q.consumers, c)
	ch.consumers = append(ch.consumers, c)
	ch.b.dispatchLocked(q)
	return c.deliveries, nil
}

func (ch *Channel) PublishWithContext(ctx context.Context, exchangeName, key string, _, _ bool, msg amqp.Publishing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	return ch.b.routeLocked(exchangeName, key, msg)
}

func (ch *Channel) NotifyClose(n chan *amqp.Error) chan *amqp.Error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		close(n)
		return n
	}
	ch.notify = append(ch.notify, n)
	return n
}

func (ch *Channel) NotifyFlow(f chan bool) chan bool {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		close(f)
		return f
	}
	ch.flows = append(ch.flows, f)
	return f
}

func (ch *Channel) Close() error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	ch.closeLocked(nil)
	return nil
}

func (ch *Channel) closeLocked(reason *amqp.Error) {
	ch.closed = true
	for _, c := range ch.consumers {
		for _, q := range ch.b.queues {
			q.consumers = removeConsumer(q.consumers, c)
			for tag, in := range q.unacked {
				if in.consumer == c {
					delete(q.unacked, tag)
					in.msg.redelivered = true
					q.ready = append([]message{in.msg}, q.ready...)
				}
			}
		}
		close(c.deliveries)
	}
	ch.consumers = nil
	for _, q := range ch.b.queues {
		ch.b.dispatchLocked(q)
	}
	for _, n := range ch.notify {
		if reason != nil {
			select {
			case n <- reason:
			default:
			}
		}
		close(n)
	}
	ch.notify = nil
	for _, f := range ch.flows {
		close(f)
	}
	ch.flows = nil
}

func removeConsumer(list []*consumer, c *consumer) []*consumer {
	out := list[:0]
	for _, x := range list {
		if x != c {
			out = append(out, x)
		}
	}
	return out
}

func (ch *Channel) Ack(tag uint64, _ bool) error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	return ch.b.settleLocked(tag, false)
}

func (ch *Channel) Nack(tag uint64, _ bool, requeue bool) error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	return ch.b.settleLocked(tag, requeue)
}

func (ch *Channel) Reject(tag uint64, requeue bool) error {
	ch.b.mu.Lock()
	defer ch.b.mu.Unlock()
	if ch.closed {
		return amqp.ErrClosed
	}
	return ch.b.settleLocked(tag, requeue)
}

// MatchTopic applies AMQP topic rules: '*' matches one word, '#' zero or more.
func MatchTopic(pattern, key string) bool {
	return matchWords(strings.Split(pattern, "."), strings.Split(key, "."))
}

func matchWords(p, k []string) bool {
	if len(p) == 0 {
		return len(k) == 0
	}
	switch p[0] {
	case "#":
		for i := 0; i <= len(k); i++ {
			if matchWords(p[1:], k[i:]) {
				return true
			}
		}
		return false
	case "*":
		return len(k) > 0 && matchWords(p[1:], k[1:])
	default:
		return len(k) > 0 && p[0] == k[0] && matchWords(p[1:], k[1:])
	}
}
