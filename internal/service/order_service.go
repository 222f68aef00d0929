package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order, id string) error
}

// InventoryClient talks to the inventory service ledger.
type InventoryClient interface {
	Reserve(ctx context.Context, productID string, quantity int, orderID string) error
	Release(ctx context.Context, productID string, quantity int, orderID string, fulfill bool) error
}

type OrderEvents interface {
	OrderCreated(ctx context.Context, order *models.Order) bool
	OrderStatusUpdated(ctx context.Context, order *models.Order, previous models.OrderStatus) bool
	PaymentStatusUpdated(ctx context.Context, order *models.Order) bool
	OrderCancelled(ctx context.Context, order *models.Order) bool
}

type OrderService struct {
	Repo      OrderRepo
	Inventory InventoryClient
	Events    OrderEvents
	locks     *keyedMutex
}

func NewOrderService(repo OrderRepo, inventory InventoryClient, events OrderEvents) *OrderService {
	return &OrderService{
		Repo:      repo,
		Inventory: inventory,
		Events:    events,
		locks:     newKeyedMutex(),
	}
}

// CreateOrder reserves stock for every item before persisting the order.
// If any reservation or the insert fails, reservations already taken are
// released. The order.created event is best effort.
func (s *OrderService) CreateOrder(ctx context.Context, in *dto.CreateOrder) (*models.Order, error) {
	in.Sanitize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	order := in.ToEntity()
	order.ID = uuid.NewString()

	reserved := make([]models.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		if err := s.Inventory.Reserve(ctx, item.ProductID, item.Quantity, order.ID); err != nil {
			s.releaseAll(ctx, order.ID, reserved)
			return nil, fmt.Errorf("reserve %s: %w", item.ProductID, err)
		}
		reserved = append(reserved, item)
	}

	if err := s.Repo.Create(ctx, order); err != nil {
		s.releaseAll(ctx, order.ID, reserved)
		return nil, err
	}

	s.Events.OrderCreated(ctx, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateStatus moves an order forward in its lifecycle. Shipping consumes
// the reservations; cancelling goes through CancelOrder.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, in *dto.UpdateOrderStatus) (*models.Order, error) {
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidRequest, in.Status)
	}
	if in.Status == models.OrderCancelled {
		return s.CancelOrder(ctx, id, &dto.CancelOrder{Reason: "cancelled by status update"})
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	order, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := order.Status
	if !previous.CanTransitionTo(in.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, previous, in.Status)
	}

	if in.Status == models.OrderShipped {
		if err := s.fulfill(ctx, order); err != nil {
			return nil, err
		}
	}

	order.Status = in.Status
	if err := s.Repo.Update(ctx, order, id); err != nil {
		return nil, err
	}
	s.Events.OrderStatusUpdated(ctx, order, previous)
	return order, nil
}

func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id string, in *dto.UpdatePaymentStatus) (*models.Order, error) {
	if !in.PaymentStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", models.ErrInvalidRequest, in.PaymentStatus)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	order, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.PaymentStatus = in.PaymentStatus
	if err := s.Repo.Update(ctx, order, id); err != nil {
		return nil, err
	}
	s.Events.PaymentStatusUpdated(ctx, order)
	return order, nil
}

// CancelOrder marks the order cancelled and announces it; the inventory
// service releases the reservations when it consumes order.cancelled. If
// the event cannot be published the reservations are released directly.
func (s *OrderService) CancelOrder(ctx context.Context, id string, in *dto.CancelOrder) (*models.Order, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	order, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(models.OrderCancelled) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, order.Status, models.OrderCancelled)
	}

	order.Status = models.OrderCancelled
	if in != nil {
		order.CancelReason = in.Reason
	}
	if err := s.Repo.Update(ctx, order, id); err != nil {
		return nil, err
	}

	if !s.Events.OrderCancelled(ctx, order) {
		logrus.WithField("order_id", order.ID).Warn("order.cancelled not published, releasing stock directly")
		s.releaseAll(ctx, order.ID, order.ReservedItems())
	}
	return order, nil
}

// fulfill consumes the reservation of every item not shipped yet. Progress
// is saved after each item so a retried shipment skips what already left.
func (s *OrderService) fulfill(ctx context.Context, order *models.Order) error {
	for i := range order.Items {
		item := &order.Items[i]
		if item.Fulfilled {
			continue
		}
		if err := s.Inventory.Release(ctx, item.ProductID, item.Quantity, order.ID, true); err != nil {
			return fmt.Errorf("fulfill %s: %w", item.ProductID, err)
		}
		item.Fulfilled = true
		if err := s.Repo.Update(ctx, order, order.ID); err != nil {
			return fmt.Errorf("record fulfillment of %s: %w", item.ProductID, err)
		}
	}
	return nil
}

func (s *OrderService) releaseAll(ctx context.Context, orderID string, items []models.OrderItem) {
	var errs []error
	for _, item := range items {
		if err := s.Inventory.Release(ctx, item.ProductID, item.Quantity, orderID, false); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", item.ProductID, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		logrus.WithError(err).WithField("order_id", orderID).Error("compensating release failed")
	}
}
