package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OrderExchange   = "order.events"
	PaymentExchange = "payment.events"
	UserExchange    = "user.events"

	EventOrderCreated        = "order.created"
	EventOrderStatusUpdated  = "order.status_updated"
	EventOrderPaymentUpdated = "order.payment_updated"
	EventOrderCancelled      = "order.cancelled"

	EventPaymentConfirmed = "payment.confirmed"
	EventPaymentFailed    = "payment.failed"

	EventUserRegistered  = "user.registered"
	EventUserLogin       = "user.login"
	EventUserUpdated     = "user.updated"
	EventUserDeactivated = "user.deactivated"
)

// Exchanges lists every topic exchange the system publishes to.
var Exchanges = []string{OrderExchange, PaymentExchange, UserExchange}

// DomainEvent is the envelope carried in every broker message body.
// The routing key of a published event is always its EventType.
type DomainEvent struct {
	ID        string         `json:"eventId"`
	EventType string         `json:"eventType"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// NewEvent builds an event from any JSON-serializable payload.
func NewEvent(eventType string, payload any, now time.Time) (DomainEvent, error) {
	data, err := toMap(payload)
	if err != nil {
		return DomainEvent{}, fmt.Errorf("error encoding %s payload: %w", eventType, err)
	}
	return DomainEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		Timestamp: now.UTC(),
		Data:      data,
	}, nil
}

// DecodeData unmarshals the event data into a typed payload.
func (e DomainEvent) DecodeData(v any) error {
	raw, err := json.Marshal(e.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func toMap(payload any) (map[string]any, error) {
	if payload == nil {
		return map[string]any{}, nil
	}
	if m, ok := payload.(map[string]any); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type OrderItemData struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderCreatedData struct {
	OrderID     string          `json:"orderId"`
	UserID      string          `json:"userId"`
	Items       []OrderItemData `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
}

type OrderStatusUpdatedData struct {
	OrderID        string `json:"orderId"`
	UserID         string `json:"userId"`
	PreviousStatus string `json:"previousStatus"`
	Status         string `json:"status"`
}

type OrderPaymentUpdatedData struct {
	OrderID       string `json:"orderId"`
	UserID        string `json:"userId"`
	PaymentStatus string `json:"paymentStatus"`
}

type OrderCancelledData struct {
	OrderID string          `json:"orderId"`
	UserID  string          `json:"userId"`
	Reason  string          `json:"reason"`
	Items   []OrderItemData `json:"items"`
}

type PaymentEventData struct {
	PaymentID string  `json:"paymentId"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason,omitempty"`
}

type UserEventData struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}
