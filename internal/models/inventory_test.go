package models_test

import (
	"testing"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, stock int) *models.InventoryRecord {
	t.Helper()
	r, err := models.NewInventoryRecord("sku-1", stock, 5, 100)
	require.NoError(t, err)
	return r
}

func TestNewInventoryRecord_Validation(t *testing.T) {
	_, err := models.NewInventoryRecord("", 10, 0, 0)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = models.NewInventoryRecord("sku", -1, 0, 0)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = models.NewInventoryRecord("sku", 1, 20, 10)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	r, err := models.NewInventoryRecord("sku", 10, 2, 50)
	require.NoError(t, err)
	assert.True(t, r.IsActive)
	assert.Equal(t, 10, r.AvailableStock)
	assert.NoError(t, r.CheckInvariant())
}

func TestReserveRelease_RoundTrip(t *testing.T) {
	r := newRecord(t, 20)

	mv, err := r.Reserve(models.MovementInput{Quantity: 5, Reference: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, models.MovementReserved, mv.Type)
	assert.Equal(t, 5, r.ReservedStock)
	assert.Equal(t, 15, r.AvailableStock)

	mv, err = r.Release(models.MovementInput{Quantity: 5, Reference: "order-1"}, false)
	require.NoError(t, err)
	assert.Equal(t, models.MovementReleased, mv.Type)
	assert.Equal(t, 0, r.ReservedStock)
	assert.Equal(t, 20, r.CurrentStock)
	assert.NoError(t, r.CheckInvariant())
}

func TestRelease_FulfillReducesStock(t *testing.T) {
	r := newRecord(t, 20)

	_, err := r.Reserve(models.MovementInput{Quantity: 5})
	require.NoError(t, err)
	afterReserve := r.AvailableStock

	mv, err := r.Release(models.MovementInput{Quantity: 5}, true)
	require.NoError(t, err)

	assert.Equal(t, models.MovementOut, mv.Type)
	assert.Equal(t, 15, r.CurrentStock)
	assert.Equal(t, 0, r.ReservedStock)
	assert.Equal(t, afterReserve, r.AvailableStock)
}

func TestReserve_InsufficientStockLeavesRecordUntouched(t *testing.T) {
	r := newRecord(t, 3)
	snapshot := *r

	_, err := r.Reserve(models.MovementInput{Quantity: 5})

	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, snapshot, *r)
}

func TestRelease_MoreThanReserved(t *testing.T) {
	r := newRecord(t, 10)
	_, err := r.Reserve(models.MovementInput{Quantity: 2})
	require.NoError(t, err)

	_, err = r.Release(models.MovementInput{Quantity: 3}, false)

	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, 2, r.ReservedStock)
}

func TestStockOut_RespectsReservations(t *testing.T) {
	r := newRecord(t, 10)
	_, err := r.Reserve(models.MovementInput{Quantity: 8})
	require.NoError(t, err)

	_, err = r.StockOut(models.MovementInput{Quantity: 3, Reason: "damaged"})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	mv, err := r.StockOut(models.MovementInput{Quantity: 2, Reason: "damaged"})
	require.NoError(t, err)
	assert.Equal(t, models.MovementOut, mv.Type)
	assert.Equal(t, 8, r.CurrentStock)
	assert.Equal(t, 0, r.AvailableStock)
}

func TestAdjust_IsAbsolute(t *testing.T) {
	r := newRecord(t, 10)

	mv, err := r.Adjust(models.MovementInput{Quantity: 42, Reason: "cycle count"})
	require.NoError(t, err)
	assert.Equal(t, models.MovementAdjustment, mv.Type)
	assert.Equal(t, 42, r.CurrentStock)
	assert.Equal(t, 42, r.AvailableStock)
}

func TestAdjust_BelowReservedRejected(t *testing.T) {
	r := newRecord(t, 10)
	_, err := r.Reserve(models.MovementInput{Quantity: 6})
	require.NoError(t, err)

	_, err = r.Adjust(models.MovementInput{Quantity: 5, Reason: "recount"})

	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, 10, r.CurrentStock)
}

func TestStockIn_InvalidQuantity(t *testing.T) {
	r := newRecord(t, 10)
	_, err := r.StockIn(models.MovementInput{Quantity: 0})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestMovement_DefaultsPerformedBy(t *testing.T) {
	r := newRecord(t, 10)
	mv, err := r.StockIn(models.MovementInput{Quantity: 1, Reason: "restock"})
	require.NoError(t, err)
	assert.Equal(t, models.SystemActor, mv.PerformedBy)
	assert.False(t, mv.Timestamp.IsZero())
	assert.Equal(t, "sku-1", mv.ProductID)
}

func TestLedgerInvariant_HoldsAcrossOperationSequence(t *testing.T) {
	r := newRecord(t, 50)
	ops := []func() error{
		func() error { _, err := r.Reserve(models.MovementInput{Quantity: 10}); return err },
		func() error { _, err := r.Reserve(models.MovementInput{Quantity: 45}); return err },
		func() error { _, err := r.StockOut(models.MovementInput{Quantity: 41}); return err },
		func() error { _, err := r.Adjust(models.MovementInput{Quantity: 9}); return err },
		func() error { _, err := r.Release(models.MovementInput{Quantity: 4}, true); return err },
		func() error { _, err := r.StockIn(models.MovementInput{Quantity: 7}); return err },
		func() error { _, err := r.Release(models.MovementInput{Quantity: 6}, false); return err },
		func() error { _, err := r.Release(models.MovementInput{Quantity: 1}, false); return err },
	}
	for _, op := range ops {
		_ = op()
		require.NoError(t, r.CheckInvariant())
	}
	assert.Equal(t, 53, r.CurrentStock)
	assert.Equal(t, 0, r.ReservedStock)
}
