package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

// StockReleaser releases reservations on behalf of a consumed event.
type StockReleaser interface {
	ReleaseForEvent(ctx context.Context, eventID, productID string, quantity int, orderID string) error
}

type InventoryEventHandler struct {
	Releaser StockReleaser
}

func NewInventoryEventHandler(r StockReleaser) *InventoryEventHandler {
	return &InventoryEventHandler{Releaser: r}
}

// OrderCancelled releases the reservation of every item in the cancelled
// order. Items already released for this event are skipped, so a
// redelivered message only finishes what a previous attempt left undone.
func (h *InventoryEventHandler) OrderCancelled(ctx context.Context, event models.DomainEvent) error {
	var data models.OrderCancelledData
	if err := event.DecodeData(&data); err != nil {
		return fmt.Errorf("error parsing order cancelled event %w", err)
	}
	if event.ID == "" || data.OrderID == "" {
		return fmt.Errorf("%w: order cancelled event without eventId or orderId", models.ErrInvalidRequest)
	}

	log := logrus.WithFields(logrus.Fields{"event_id": event.ID, "order_id": data.OrderID})
	var errs []error
	for _, item := range data.Items {
		err := h.Releaser.ReleaseForEvent(ctx, event.ID, item.ProductID, item.Quantity, data.OrderID)
		switch {
		case err == nil:
			log.WithField("product_id", item.ProductID).Info("reservation released")
		case errors.Is(err, models.ErrEventAlreadyProcessed):
			log.WithField("product_id", item.ProductID).Debug("reservation already released for event")
		default:
			errs = append(errs, fmt.Errorf("release %s: %w", item.ProductID, err))
		}
	}
	return errors.Join(errs...)
}
