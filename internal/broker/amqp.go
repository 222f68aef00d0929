package broker

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const heartbeat = 10 * time.Second

// Channel is the part of *amqp.Channel the messaging layer uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	NotifyFlow(c chan bool) chan bool
	Close() error
}

// Connection is the part of *amqp.Connection the messaging layer uses.
type Connection interface {
	Channel() (Channel, error)
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	Close() error
}

// Dialer opens a broker connection.
type Dialer func(url string) (Connection, error)

// AMQPDialer dials a RabbitMQ broker and tags the connection with the service name.
func AMQPDialer(serviceName string) Dialer {
	return func(url string) (Connection, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{
			Heartbeat:  heartbeat,
			Locale:     "en_US",
			Properties: amqp.Table{"connection_name": serviceName},
		})
		if err != nil {
			return nil, err
		}
		return &amqpConnection{Connection: conn}, nil
	}
}

type amqpConnection struct {
	*amqp.Connection
}

func (c *amqpConnection) Channel() (Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}
