package dto

import (
	"fmt"
	"strings"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrder struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Items  []OrderItem `json:"items"`
}

func (o *CreateOrder) Sanitize() {
	o.UserID = strings.TrimSpace(o.UserID)
	o.Email = strings.ToLower(strings.TrimSpace(o.Email))
	for i := range o.Items {
		o.Items[i].ProductID = strings.TrimSpace(o.Items[i].ProductID)
	}
}

func (o *CreateOrder) Validate() error {
	if o.UserID == "" {
		return fmt.Errorf("%w: userId is required", models.ErrInvalidRequest)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", models.ErrInvalidRequest)
	}
	seen := make(map[string]bool, len(o.Items))
	for _, it := range o.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.Price < 0 {
			return fmt.Errorf("%w: invalid item %q", models.ErrInvalidRequest, it.ProductID)
		}
		if seen[it.ProductID] {
			return fmt.Errorf("%w: duplicate item %q", models.ErrInvalidRequest, it.ProductID)
		}
		seen[it.ProductID] = true
	}
	return nil
}

func (o *CreateOrder) ToEntity() *models.Order {
	order := &models.Order{
		UserID:        o.UserID,
		Email:         o.Email,
		Status:        models.OrderPending,
		PaymentStatus: models.PaymentPending,
	}
	for _, it := range o.Items {
		order.Items = append(order.Items, models.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
		order.TotalAmount += float64(it.Quantity) * it.Price
	}
	return order
}

type UpdateOrderStatus struct {
	Status models.OrderStatus `json:"status"`
}

type UpdatePaymentStatus struct {
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

type CancelOrder struct {
	Reason string `json:"reason"`
}
