package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/notifier"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/subscriber"
)

// OrderEventService turns order lifecycle changes into order.events
// messages and customer notifications.
type OrderEventService struct {
	emitter
	service string
}

func NewOrderEventService(pub EventPublisher, n notifier.Notifier, serviceName string) *OrderEventService {
	return &OrderEventService{
		emitter: newEmitter(pub, n, "order-events"),
		service: serviceName,
	}
}

func (s *OrderEventService) OrderCreated(ctx context.Context, order *models.Order) bool {
	return s.emit(ctx, models.OrderExchange, models.EventOrderCreated, models.OrderCreatedData{
		OrderID:     order.ID,
		UserID:      order.UserID,
		Items:       order.ItemData(),
		TotalAmount: order.TotalAmount,
	}, &notifier.Notification{
		Type:      notifier.TypeOrderCreated,
		UserID:    order.UserID,
		Recipient: order.Email,
		Subject:   "Order received",
		Data:      map[string]any{"orderId": order.ID, "totalAmount": order.TotalAmount},
	})
}

func (s *OrderEventService) OrderStatusUpdated(ctx context.Context, order *models.Order, previous models.OrderStatus) bool {
	return s.emit(ctx, models.OrderExchange, models.EventOrderStatusUpdated, models.OrderStatusUpdatedData{
		OrderID:        order.ID,
		UserID:         order.UserID,
		PreviousStatus: string(previous),
		Status:         string(order.Status),
	}, &notifier.Notification{
		Type:      notifier.TypeOrderStatus,
		UserID:    order.UserID,
		Recipient: order.Email,
		Subject:   fmt.Sprintf("Your order is now %s", order.Status),
		Data:      map[string]any{"orderId": order.ID, "status": order.Status},
	})
}

// PaymentStatusUpdated publishes without notifying; the payment provider
// already informs the customer.
func (s *OrderEventService) PaymentStatusUpdated(ctx context.Context, order *models.Order) bool {
	return s.emit(ctx, models.OrderExchange, models.EventOrderPaymentUpdated, models.OrderPaymentUpdatedData{
		OrderID:       order.ID,
		UserID:        order.UserID,
		PaymentStatus: string(order.PaymentStatus),
	}, nil)
}

func (s *OrderEventService) OrderCancelled(ctx context.Context, order *models.Order) bool {
	return s.emit(ctx, models.OrderExchange, models.EventOrderCancelled, models.OrderCancelledData{
		OrderID: order.ID,
		UserID:  order.UserID,
		Reason:  order.CancelReason,
		Items:   order.ReservedItemData(),
	}, &notifier.Notification{
		Type:      notifier.TypeOrderCanceled,
		UserID:    order.UserID,
		Recipient: order.Email,
		Subject:   "Order cancelled",
		Data:      map[string]any{"orderId": order.ID, "reason": order.CancelReason},
	})
}

// RegisterSubscriptions binds the order service to the events of other
// domains it listens to.
func (s *OrderEventService) RegisterSubscriptions(ctx context.Context, sub EventSubscriber) error {
	bindings := []struct {
		exchange   string
		routingKey string
		handler    subscriber.Handler
	}{
		{models.UserExchange, models.EventUserDeactivated, s.onUserDeactivated},
		{models.PaymentExchange, models.EventPaymentConfirmed, s.onPaymentConfirmed},
		{models.PaymentExchange, models.EventPaymentFailed, s.onPaymentFailed},
	}
	for _, b := range bindings {
		queue := subscriber.QueueName(s.service, b.routingKey)
		if err := sub.Subscribe(ctx, b.exchange, b.routingKey, queue, b.handler); err != nil {
			return fmt.Errorf("subscribe %s: %w", b.routingKey, err)
		}
	}
	return nil
}

// The reactions below are placeholders: the events are consumed and
// acknowledged so queues do not grow, but no order state changes yet.

func (s *OrderEventService) onUserDeactivated(_ context.Context, event models.DomainEvent) error {
	var data models.UserEventData
	if err := event.DecodeData(&data); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"event_id": event.ID, "user_id": data.UserID}).
		Info("user deactivated, order changes not applied")
	return nil
}

func (s *OrderEventService) onPaymentConfirmed(_ context.Context, event models.DomainEvent) error {
	var data models.PaymentEventData
	if err := event.DecodeData(&data); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"event_id": event.ID, "order_id": data.OrderID}).
		Info("payment confirmed, order changes not applied")
	return nil
}

func (s *OrderEventService) onPaymentFailed(_ context.Context, event models.DomainEvent) error {
	var data models.PaymentEventData
	if err := event.DecodeData(&data); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"event_id": event.ID, "order_id": data.OrderID, "reason": data.Reason}).
		Info("payment failed, order changes not applied")
	return nil
}
