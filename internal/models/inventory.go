package models

import (
	"fmt"
	"time"
)

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
	MovementReserved   MovementType = "reserved"
	MovementReleased   MovementType = "released"

	SystemActor = "system"
)

func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment, MovementReserved, MovementReleased:
		return true
	default:
		return false
	}
}

// InventoryRecord is the stock ledger of a single product.
// AvailableStock is persisted for querying but always derived from the
// other two counters by recompute.
type InventoryRecord struct {
	ProductID      string    `gorm:"primaryKey" json:"productId"`
	CurrentStock   int       `gorm:"not null" json:"currentStock"`
	ReservedStock  int       `gorm:"not null" json:"reservedStock"`
	AvailableStock int       `gorm:"not null;index" json:"availableStock"`
	ReorderLevel   int       `gorm:"not null" json:"reorderLevel"`
	MaxStock       int       `gorm:"not null" json:"maxStock"`
	IsActive       bool      `gorm:"not null" json:"isActive"`
	Version        int64     `gorm:"not null" json:"version"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Movement is an append-only ledger entry. Rows are never updated.
type Movement struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   string       `gorm:"index;not null" json:"productId"`
	Type        MovementType `gorm:"not null" json:"type"`
	Quantity    int          `gorm:"not null" json:"quantity"`
	Reason      string       `json:"reason"`
	Reference   string       `gorm:"index" json:"reference,omitempty"`
	PerformedBy string       `json:"performedBy"`
	Timestamp   time.Time    `gorm:"index;not null" json:"timestamp"`
}

// ProcessedEvent records that an event has already been applied to a product.
type ProcessedEvent struct {
	EventID     string    `gorm:"primaryKey"`
	ProductID   string    `gorm:"primaryKey"`
	ProcessedAt time.Time `gorm:"not null"`
}

// MovementInput carries the descriptive fields of a stock change.
type MovementInput struct {
	Quantity    int
	Reason      string
	Reference   string
	PerformedBy string
	At          time.Time
}

func NewInventoryRecord(productID string, initialStock, reorderLevel, maxStock int) (*InventoryRecord, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: productId is required", ErrInvalidRequest)
	}
	if initialStock < 0 || reorderLevel < 0 || maxStock < 0 {
		return nil, fmt.Errorf("%w: stock levels must not be negative", ErrInvalidRequest)
	}
	if maxStock > 0 && reorderLevel > maxStock {
		return nil, fmt.Errorf("%w: reorderLevel exceeds maxStock", ErrInvalidRequest)
	}
	r := &InventoryRecord{
		ProductID:    productID,
		CurrentStock: initialStock,
		ReorderLevel: reorderLevel,
		MaxStock:     maxStock,
		IsActive:     true,
	}
	r.recompute()
	return r, nil
}

func (r *InventoryRecord) recompute() {
	r.AvailableStock = r.CurrentStock - r.ReservedStock
}

// Available returns the derived available quantity without trusting the stored field.
func (r *InventoryRecord) Available() int {
	return r.CurrentStock - r.ReservedStock
}

// NeedsReorder reports whether available stock dropped to the reorder level.
func (r *InventoryRecord) NeedsReorder() bool {
	return r.Available() <= r.ReorderLevel
}

// CheckInvariant validates 0 <= reserved <= current and the derived field.
func (r *InventoryRecord) CheckInvariant() error {
	if r.ReservedStock < 0 || r.CurrentStock < 0 || r.ReservedStock > r.CurrentStock {
		return fmt.Errorf("ledger invariant violated for %s: current=%d reserved=%d",
			r.ProductID, r.CurrentStock, r.ReservedStock)
	}
	if r.AvailableStock != r.CurrentStock-r.ReservedStock {
		return fmt.Errorf("ledger invariant violated for %s: available=%d, expected %d",
			r.ProductID, r.AvailableStock, r.CurrentStock-r.ReservedStock)
	}
	return nil
}

func (r *InventoryRecord) StockIn(in MovementInput) (Movement, error) {
	if in.Quantity <= 0 {
		return Movement{}, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidRequest)
	}
	r.CurrentStock += in.Quantity
	r.recompute()
	return r.movement(MovementIn, in), nil
}

func (r *InventoryRecord) StockOut(in MovementInput) (Movement, error) {
	if in.Quantity <= 0 {
		return Movement{}, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidRequest)
	}
	if available := r.Available(); available < in.Quantity {
		return Movement{}, fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, available, in.Quantity)
	}
	r.CurrentStock -= in.Quantity
	r.recompute()
	return r.movement(MovementOut, in), nil
}

// Adjust sets CurrentStock to an absolute value.
func (r *InventoryRecord) Adjust(in MovementInput) (Movement, error) {
	if in.Quantity < 0 {
		return Movement{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidRequest)
	}
	if in.Quantity < r.ReservedStock {
		return Movement{}, fmt.Errorf("%w: cannot set stock to %d with %d reserved", ErrInsufficientStock, in.Quantity, r.ReservedStock)
	}
	r.CurrentStock = in.Quantity
	r.recompute()
	return r.movement(MovementAdjustment, in), nil
}

func (r *InventoryRecord) Reserve(in MovementInput) (Movement, error) {
	if in.Quantity <= 0 {
		return Movement{}, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidRequest)
	}
	if available := r.Available(); available < in.Quantity {
		return Movement{}, fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, available, in.Quantity)
	}
	r.ReservedStock += in.Quantity
	r.recompute()
	return r.movement(MovementReserved, in), nil
}

// Release returns reserved stock. With fulfill the quantity also leaves
// CurrentStock and the movement is recorded as an outbound shipment.
func (r *InventoryRecord) Release(in MovementInput, fulfill bool) (Movement, error) {
	if in.Quantity <= 0 {
		return Movement{}, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidRequest)
	}
	if r.ReservedStock < in.Quantity {
		return Movement{}, fmt.Errorf("%w: reserved %d, requested release of %d", ErrInsufficientStock, r.ReservedStock, in.Quantity)
	}
	r.ReservedStock -= in.Quantity
	kind := MovementReleased
	if fulfill {
		r.CurrentStock -= in.Quantity
		kind = MovementOut
	}
	r.recompute()
	return r.movement(kind, in), nil
}

func (r *InventoryRecord) movement(kind MovementType, in MovementInput) Movement {
	by := in.PerformedBy
	if by == "" {
		by = SystemActor
	}
	at := in.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return Movement{
		ProductID:   r.ProductID,
		Type:        kind,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Reference:   in.Reference,
		PerformedBy: by,
		Timestamp:   at,
	}
}
