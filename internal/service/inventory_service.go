package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

const maxVersionRetries = 5

// InventoryRepo persists ledger records and their movement history.
// SaveMutation must apply the counters (guarded by expectedVersion), the
// movement and the processed-event marker in one transaction.
type InventoryRepo interface {
	Create(ctx context.Context, record *models.InventoryRecord) error
	GetByProductID(ctx context.Context, productID string) (*models.InventoryRecord, error)
	List(ctx context.Context) ([]models.InventoryRecord, error)
	ListLowStock(ctx context.Context) ([]models.InventoryRecord, error)
	SaveMutation(ctx context.Context, record *models.InventoryRecord, expectedVersion int64, movement *models.Movement, eventID string) error
	EventProcessed(ctx context.Context, eventID, productID string) (bool, error)
	Movements(ctx context.Context, productID string, limit int) ([]models.Movement, error)
}

// InventoryService owns every stock mutation. Mutations of one product are
// serialized in-process and guarded across processes by the record version.
type InventoryService struct {
	Repo    InventoryRepo
	Metrics *metrics.Metrics
	locks   *keyedMutex
	now     func() time.Time
}

func NewInventoryService(repo InventoryRepo, m *metrics.Metrics) *InventoryService {
	return &InventoryService{
		Repo:    repo,
		Metrics: m,
		locks:   newKeyedMutex(),
		now:     time.Now,
	}
}

func (s *InventoryService) CreateInventory(ctx context.Context, in *dto.CreateInventory) (*models.InventoryRecord, error) {
	in.Sanitize()
	record, err := models.NewInventoryRecord(in.ProductID, in.InitialStock, in.ReorderLevel, in.MaxStock)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	record.CreatedAt, record.UpdatedAt = now, now

	unlock := s.locks.Lock(record.ProductID)
	defer unlock()

	err = s.Repo.Create(ctx, record)
	s.Metrics.IncInventoryOp("create", err == nil)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetInventory treats deactivated products as missing.
func (s *InventoryService) GetInventory(ctx context.Context, productID string) (*models.InventoryRecord, error) {
	record, err := s.Repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !record.IsActive {
		return nil, fmt.Errorf("%w: inventory for %s is inactive", models.ErrNotFound, productID)
	}
	return record, nil
}

func (s *InventoryService) ListInventory(ctx context.Context) ([]models.InventoryRecord, error) {
	return s.Repo.List(ctx)
}

// LowStock lists active products whose available stock is at or below
// their reorder level.
func (s *InventoryService) LowStock(ctx context.Context) ([]models.InventoryRecord, error) {
	return s.Repo.ListLowStock(ctx)
}

func (s *InventoryService) Reserve(ctx context.Context, productID string, in *dto.Reserve) (*models.InventoryRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "reserve", productID, "", func(r *models.InventoryRecord, at time.Time) (models.Movement, error) {
		return r.Reserve(models.MovementInput{
			Quantity:  *in.Quantity,
			Reason:    "order reservation",
			Reference: in.OrderID,
			At:        at,
		})
	})
}

// Release returns reserved stock; with Fulfill the units also leave the
// warehouse.
func (s *InventoryService) Release(ctx context.Context, productID string, in *dto.Release) (*models.InventoryRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	op, reason := "release", "reservation released"
	if in.Fulfill {
		op, reason = "fulfill", "order fulfilled"
	}
	return s.mutate(ctx, op, productID, "", func(r *models.InventoryRecord, at time.Time) (models.Movement, error) {
		return r.Release(models.MovementInput{
			Quantity:  *in.Quantity,
			Reason:    reason,
			Reference: in.OrderID,
			At:        at,
		}, in.Fulfill)
	})
}

// ReleaseForEvent releases a reservation on behalf of a consumed event.
// Applying the same event to the same product twice returns
// models.ErrEventAlreadyProcessed and changes nothing.
func (s *InventoryService) ReleaseForEvent(ctx context.Context, eventID, productID string, quantity int, orderID string) error {
	if eventID == "" {
		return fmt.Errorf("%w: eventId is required", models.ErrInvalidRequest)
	}
	_, err := s.mutate(ctx, "release", productID, eventID, func(r *models.InventoryRecord, at time.Time) (models.Movement, error) {
		return r.Release(models.MovementInput{
			Quantity:  quantity,
			Reason:    "order cancelled",
			Reference: orderID,
			At:        at,
		}, false)
	})
	return err
}

func (s *InventoryService) AdjustStock(ctx context.Context, in *dto.AdjustStock) (*models.InventoryRecord, error) {
	in.Sanitize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "adjust", in.ProductID, "", func(r *models.InventoryRecord, at time.Time) (models.Movement, error) {
		mv := models.MovementInput{
			Quantity:    *in.Quantity,
			Reason:      in.Reason,
			Reference:   in.Reference,
			PerformedBy: in.PerformedBy,
			At:          at,
		}
		switch in.Type {
		case models.MovementIn:
			return r.StockIn(mv)
		case models.MovementOut:
			return r.StockOut(mv)
		default:
			return r.Adjust(mv)
		}
	})
}

// GetMovements returns the history newest first. History stays readable
// after deactivation.
func (s *InventoryService) GetMovements(ctx context.Context, productID string, limit int) ([]models.Movement, error) {
	if _, err := s.Repo.GetByProductID(ctx, productID); err != nil {
		return nil, err
	}
	return s.Repo.Movements(ctx, productID, limit)
}

func (s *InventoryService) Deactivate(ctx context.Context, productID string) error {
	unlock := s.locks.Lock(productID)
	defer unlock()

	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		record, err := s.GetInventory(ctx, productID)
		if err != nil {
			return err
		}
		expected := record.Version
		record.IsActive = false
		record.Version = expected + 1
		record.UpdatedAt = s.now().UTC()

		err = s.Repo.SaveMutation(ctx, record, expected, nil, "")
		if errors.Is(err, models.ErrVersionConflict) {
			continue
		}
		s.Metrics.IncInventoryOp("deactivate", err == nil)
		return err
	}
	s.Metrics.IncInventoryOp("deactivate", false)
	return models.ErrVersionConflict
}

type transition func(r *models.InventoryRecord, at time.Time) (models.Movement, error)

func (s *InventoryService) mutate(ctx context.Context, op, productID, eventID string, apply transition) (*models.InventoryRecord, error) {
	unlock := s.locks.Lock(productID)
	defer unlock()

	record, err := s.mutateLocked(ctx, productID, eventID, apply)
	s.Metrics.IncInventoryOp(op, err == nil)
	return record, err
}

func (s *InventoryService) mutateLocked(ctx context.Context, productID, eventID string, apply transition) (*models.InventoryRecord, error) {
	if eventID != "" {
		done, err := s.Repo.EventProcessed(ctx, eventID, productID)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, models.ErrEventAlreadyProcessed
		}
	}

	for attempt := 1; ; attempt++ {
		record, err := s.GetInventory(ctx, productID)
		if err != nil {
			return nil, err
		}
		expected := record.Version
		now := s.now().UTC()

		mv, err := apply(record, now)
		if err != nil {
			return nil, err
		}
		record.Version = expected + 1
		record.UpdatedAt = now

		err = s.Repo.SaveMutation(ctx, record, expected, &mv, eventID)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, models.ErrVersionConflict) || attempt >= maxVersionRetries {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"product_id": productID,
			"attempt":    attempt,
		}).Warn("inventory version conflict, retrying")
	}
}
