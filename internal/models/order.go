package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"

	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	// Fulfilled is set once the item's reservation was consumed by shipping.
	Fulfilled bool    `json:"fulfilled,omitempty"`
}

type Order struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	UserID        string        `gorm:"index;not null" json:"userId"`
	Email         string        `json:"email"`
	Items         []OrderItem   `gorm:"serializer:json" json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        OrderStatus   `gorm:"not null" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null" json:"paymentStatus"`
	CancelReason  string        `json:"cancelReason,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the forward-only order lifecycle.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderConfirmed || next == OrderShipped || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderShipped || next == OrderCancelled
	case OrderShipped:
		return next == OrderDelivered
	default:
		return false
	}
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

func (o *Order) ItemData() []OrderItemData {
	return itemData(o.Items)
}

// ReservedItems are the items whose stock is still held by a reservation.
func (o *Order) ReservedItems() []OrderItem {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		if !it.Fulfilled {
			items = append(items, it)
		}
	}
	return items
}

func (o *Order) ReservedItemData() []OrderItemData {
	return itemData(o.ReservedItems())
}

func itemData(in []OrderItem) []OrderItemData {
	items := make([]OrderItemData, 0, len(in))
	for _, it := range in {
		items = append(items, OrderItemData{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return items
}
