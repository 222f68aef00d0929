package broker

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

const ExchangeKindTopic = "topic"

// TopicRegistry declares the durable topic exchanges a service publishes to
// and redeclares them after every reconnect.
type TopicRegistry struct {
	manager   *ConnectionManager
	exchanges []string
	logger    logrus.FieldLogger

	mu       sync.RWMutex
	declared map[string]bool
}

func NewTopicRegistry(manager *ConnectionManager, exchanges ...string) *TopicRegistry {
	r := &TopicRegistry{
		manager:   manager,
		exchanges: append([]string(nil), exchanges...),
		logger:    manager.logger.WithField("component", "topic-registry"),
		declared:  make(map[string]bool, len(exchanges)),
	}
	manager.OnReconnect("topic-registry", func(_ context.Context, ch Channel) error {
		return r.declare(ch)
	})
	return r
}

// DeclareAll declares every known exchange. Declaring an exchange that
// already exists with the same properties is a no-op on the broker side.
func (r *TopicRegistry) DeclareAll(ctx context.Context) error {
	ch, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}
	return r.declare(ch)
}

func (r *TopicRegistry) declare(ch Channel) error {
	for _, name := range r.exchanges {
		if err := ch.ExchangeDeclare(name, ExchangeKindTopic, true, false, false, false, nil); err != nil {
			r.setDeclared(name, false)
			return fmt.Errorf("declare exchange %s: %w", name, err)
		}
		r.setDeclared(name, true)
		r.logger.WithField("exchange", name).Debug("exchange declared")
	}
	return nil
}

func (r *TopicRegistry) setDeclared(name string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.declared[name] = ok
}

// Declared reports whether the exchange was declared on the current connection.
func (r *TopicRegistry) Declared(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.declared[name]
}

func (r *TopicRegistry) Exchanges() []string {
	return append([]string(nil), r.exchanges...)
}
