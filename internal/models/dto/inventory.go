package dto

import (
	"fmt"
	"strings"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

type CreateInventory struct {
	ProductID    string `json:"productId"`
	InitialStock int    `json:"initialStock"`
	ReorderLevel int    `json:"reorderLevel"`
	MaxStock     int    `json:"maxStock"`
}

func (c *CreateInventory) Sanitize() {
	c.ProductID = strings.TrimSpace(c.ProductID)
}

// Reserve is the body of POST /inventory/:productId/reserve.
// Pointer fields distinguish a missing quantity from zero.
type Reserve struct {
	Quantity *int   `json:"quantity"`
	OrderID  string `json:"orderId"`
}

func (r *Reserve) Validate() error {
	if r.Quantity == nil {
		return fmt.Errorf("%w: quantity is required", models.ErrInvalidRequest)
	}
	if strings.TrimSpace(r.OrderID) == "" {
		return fmt.Errorf("%w: orderId is required", models.ErrInvalidRequest)
	}
	return nil
}

type Release struct {
	Quantity *int   `json:"quantity"`
	OrderID  string `json:"orderId"`
	Fulfill  bool   `json:"fulfill"`
}

func (r *Release) Validate() error {
	if r.Quantity == nil {
		return fmt.Errorf("%w: quantity is required", models.ErrInvalidRequest)
	}
	if strings.TrimSpace(r.OrderID) == "" {
		return fmt.Errorf("%w: orderId is required", models.ErrInvalidRequest)
	}
	return nil
}

type AdjustStock struct {
	ProductID   string              `json:"-"`
	Quantity    *int                `json:"quantity"`
	Type        models.MovementType `json:"type"`
	Reason      string              `json:"reason"`
	Reference   string              `json:"reference"`
	PerformedBy string              `json:"performedBy"`
}

func (a *AdjustStock) Sanitize() {
	a.Type = models.MovementType(strings.ToLower(strings.TrimSpace(string(a.Type))))
	a.Reason = strings.TrimSpace(a.Reason)
	a.Reference = strings.TrimSpace(a.Reference)
	a.PerformedBy = strings.TrimSpace(a.PerformedBy)
}

func (a *AdjustStock) Validate() error {
	if a.Quantity == nil {
		return fmt.Errorf("%w: quantity is required", models.ErrInvalidRequest)
	}
	if a.Reason == "" {
		return fmt.Errorf("%w: reason is required", models.ErrInvalidRequest)
	}
	switch a.Type {
	case models.MovementIn, models.MovementOut, models.MovementAdjustment:
		return nil
	default:
		return fmt.Errorf("%w: type must be one of in, out, adjustment", models.ErrInvalidRequest)
	}
}
