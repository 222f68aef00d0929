package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/metrics"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service"
)

func intPtr(v int) *int { return &v }

func newInventory(t *testing.T, stock, reorder int) (*service.InventoryService, *memoryInventoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	svc := service.NewInventoryService(repo, nil)
	_, err := svc.CreateInventory(context.Background(), &dto.CreateInventory{
		ProductID:    "sku-1",
		InitialStock: stock,
		ReorderLevel: reorder,
		MaxStock:     200,
	})
	require.NoError(t, err)
	return svc, repo
}

func reserve(qty int, order string) *dto.Reserve {
	return &dto.Reserve{Quantity: intPtr(qty), OrderID: order}
}

func release(qty int, order string, fulfill bool) *dto.Release {
	return &dto.Release{Quantity: intPtr(qty), OrderID: order, Fulfill: fulfill}
}

func TestInventory_OrderScenario(t *testing.T) {
	svc, repo := newInventory(t, 50, 5)
	ctx := context.Background()

	rec, err := svc.Reserve(ctx, "sku-1", reserve(10, "order-A"))
	require.NoError(t, err)
	assert.Equal(t, 50, rec.CurrentStock)
	assert.Equal(t, 10, rec.ReservedStock)

	_, err = svc.Reserve(ctx, "sku-1", reserve(45, "order-B"))
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	rec, err = svc.Release(ctx, "sku-1", release(10, "order-A", true))
	require.NoError(t, err)
	assert.Equal(t, 40, rec.CurrentStock)
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Equal(t, 40, rec.AvailableStock)

	assert.Equal(t, []models.MovementType{models.MovementReserved, models.MovementOut}, repo.movementTypes("sku-1"))
}

func TestInventory_ReserveReleaseRoundTrip(t *testing.T) {
	svc, repo := newInventory(t, 20, 0)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "sku-1", reserve(5, "o-1"))
	require.NoError(t, err)
	rec, err := svc.Release(ctx, "sku-1", release(5, "o-1", false))
	require.NoError(t, err)

	assert.Equal(t, 0, rec.ReservedStock)
	assert.Equal(t, 20, rec.AvailableStock)
	assert.Equal(t, []models.MovementType{models.MovementReserved, models.MovementReleased}, repo.movementTypes("sku-1"))
}

func TestInventory_InsufficientStockAppendsNothing(t *testing.T) {
	svc, repo := newInventory(t, 3, 0)

	_, err := svc.Reserve(context.Background(), "sku-1", reserve(5, "o-1"))

	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	rec, _ := repo.GetByProductID(context.Background(), "sku-1")
	assert.Equal(t, 3, rec.CurrentStock)
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Empty(t, repo.movementTypes("sku-1"))
	assert.Equal(t, 0, repo.saveCalls)
}

func TestInventory_CreateDuplicate(t *testing.T) {
	svc, _ := newInventory(t, 3, 0)

	_, err := svc.CreateInventory(context.Background(), &dto.CreateInventory{ProductID: " sku-1 ", InitialStock: 1})

	assert.ErrorIs(t, err, models.ErrDuplicateProduct)
}

func TestInventory_CreateInvalid(t *testing.T) {
	svc := service.NewInventoryService(newMemoryRepo(), nil)

	_, err := svc.CreateInventory(context.Background(), &dto.CreateInventory{ProductID: "sku", InitialStock: -4})

	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestInventory_ValidationErrors(t *testing.T) {
	svc, _ := newInventory(t, 10, 0)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "sku-1", &dto.Reserve{OrderID: "o-1"})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.Reserve(ctx, "sku-1", reserve(0, "o-1"))
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.Release(ctx, "sku-1", &dto.Release{Quantity: intPtr(1)})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.Reserve(ctx, "unknown", reserve(1, "o-1"))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestInventory_AdjustStock(t *testing.T) {
	svc, repo := newInventory(t, 10, 0)
	ctx := context.Background()

	rec, err := svc.AdjustStock(ctx, &dto.AdjustStock{ProductID: "sku-1", Quantity: intPtr(5), Type: "IN", Reason: "restock"})
	require.NoError(t, err)
	assert.Equal(t, 15, rec.CurrentStock)

	rec, err = svc.AdjustStock(ctx, &dto.AdjustStock{ProductID: "sku-1", Quantity: intPtr(3), Type: models.MovementOut, Reason: "damaged"})
	require.NoError(t, err)
	assert.Equal(t, 12, rec.CurrentStock)

	rec, err = svc.AdjustStock(ctx, &dto.AdjustStock{ProductID: "sku-1", Quantity: intPtr(30), Type: models.MovementAdjustment, Reason: "cycle count", PerformedBy: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 30, rec.CurrentStock)

	_, err = svc.AdjustStock(ctx, &dto.AdjustStock{ProductID: "sku-1", Quantity: intPtr(3), Type: models.MovementIn})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.AdjustStock(ctx, &dto.AdjustStock{ProductID: "sku-1", Quantity: intPtr(3), Type: models.MovementReserved, Reason: "x"})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	movements, err := svc.GetMovements(ctx, "sku-1", 0)
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, models.MovementAdjustment, movements[0].Type)
	assert.Equal(t, "alice", movements[0].PerformedBy)
	assert.Equal(t, models.MovementIn, movements[2].Type)
	assert.Equal(t, models.SystemActor, movements[2].PerformedBy)
	assert.Len(t, repo.movementTypes("sku-1"), 3)
}

func TestInventory_GetMovementsNewestFirstWithLimit(t *testing.T) {
	svc, _ := newInventory(t, 10, 0)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "sku-1", reserve(1, "o-1"))
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, "sku-1", reserve(2, "o-2"))
	require.NoError(t, err)
	_, err = svc.Release(ctx, "sku-1", release(1, "o-1", false))
	require.NoError(t, err)

	movements, err := svc.GetMovements(ctx, "sku-1", 2)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, models.MovementReleased, movements[0].Type)
	assert.Equal(t, "o-2", movements[1].Reference)

	_, err = svc.GetMovements(ctx, "missing", 0)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestInventory_DeactivateKeepsHistory(t *testing.T) {
	svc, _ := newInventory(t, 10, 0)
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "sku-1", reserve(1, "o-1"))
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, "sku-1"))

	_, err = svc.GetInventory(ctx, "sku-1")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Reserve(ctx, "sku-1", reserve(1, "o-2"))
	assert.ErrorIs(t, err, models.ErrNotFound)

	movements, err := svc.GetMovements(ctx, "sku-1", 0)
	require.NoError(t, err)
	assert.Len(t, movements, 1)

	list, err := svc.ListInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Deactivate(ctx, "sku-1"), models.ErrNotFound)
}

func TestInventory_LowStock(t *testing.T) {
	svc, _ := newInventory(t, 10, 4)
	ctx := context.Background()

	low, err := svc.LowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)

	_, err = svc.Reserve(ctx, "sku-1", reserve(6, "o-1"))
	require.NoError(t, err)

	low, err = svc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "sku-1", low[0].ProductID)
}

func TestInventory_ReleaseForEventIsIdempotent(t *testing.T) {
	svc, repo := newInventory(t, 10, 0)
	ctx := context.Background()
	_, err := svc.Reserve(ctx, "sku-1", reserve(4, "o-1"))
	require.NoError(t, err)

	require.NoError(t, svc.ReleaseForEvent(ctx, "evt-1", "sku-1", 4, "o-1"))
	err = svc.ReleaseForEvent(ctx, "evt-1", "sku-1", 4, "o-1")

	assert.ErrorIs(t, err, models.ErrEventAlreadyProcessed)
	rec, _ := svc.GetInventory(ctx, "sku-1")
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Equal(t, 10, rec.CurrentStock)
	assert.Equal(t, []models.MovementType{models.MovementReserved, models.MovementReleased}, repo.movementTypes("sku-1"))

	assert.ErrorIs(t, svc.ReleaseForEvent(ctx, "", "sku-1", 1, "o-1"), models.ErrInvalidRequest)
}

func TestInventory_RetriesVersionConflicts(t *testing.T) {
	svc, repo := newInventory(t, 10, 0)
	repo.conflicts = 2

	rec, err := svc.Reserve(context.Background(), "sku-1", reserve(3, "o-1"))

	require.NoError(t, err)
	assert.Equal(t, 3, rec.ReservedStock)
	assert.Equal(t, 3, repo.saveCalls)
}

func TestInventory_GivesUpAfterRepeatedConflicts(t *testing.T) {
	svc, repo := newInventory(t, 10, 0)
	repo.conflicts = 100

	_, err := svc.Reserve(context.Background(), "sku-1", reserve(3, "o-1"))

	assert.ErrorIs(t, err, models.ErrVersionConflict)
	assert.Equal(t, 5, repo.saveCalls)
}

func TestInventory_PersistenceFailureIsFullRollback(t *testing.T) {
	svc, repo := newInventory(t, 10, 0)
	repo.saveErr = errors.New("connection reset")

	_, err := svc.Reserve(context.Background(), "sku-1", reserve(3, "o-1"))

	assert.EqualError(t, err, "connection reset")
	rec, _ := repo.GetByProductID(context.Background(), "sku-1")
	assert.Equal(t, 0, rec.ReservedStock)
	assert.Empty(t, repo.movementTypes("sku-1"))
}

func TestInventory_ConcurrentReservationsNeverOversell(t *testing.T) {
	svc, repo := newInventory(t, 30, 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(ctx, "sku-1", reserve(1, "o"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, models.ErrInsufficientStock) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, succeeded)
	assert.Equal(t, 20, rejected)
	rec, _ := repo.GetByProductID(ctx, "sku-1")
	assert.Equal(t, 30, rec.ReservedStock)
	assert.Equal(t, 0, rec.AvailableStock)
	assert.NoError(t, rec.CheckInvariant())
	assert.Len(t, repo.movementTypes("sku-1"), 30)
}

func TestInventory_RecordsOperationMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	repo := newMemoryRepo()
	svc := service.NewInventoryService(repo, m)
	ctx := context.Background()

	_, err := svc.CreateInventory(ctx, &dto.CreateInventory{ProductID: "sku-1", InitialStock: 2})
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, "sku-1", reserve(1, "o-1"))
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, "sku-1", reserve(5, "o-2"))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.InventoryOperations.WithLabelValues("reserve", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InventoryOperations.WithLabelValues("reserve", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InventoryOperations.WithLabelValues("create", "success")))
}
