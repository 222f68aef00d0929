package service_test

import (
	"context"
	"sort"
	"sync"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

// memoryInventoryRepo mirrors the transactional contract of the Postgres
// repository: the version check, movement insert and processed-event insert
// succeed or fail together.
type memoryInventoryRepo struct {
	mu        sync.Mutex
	records   map[string]models.InventoryRecord
	movements []models.Movement
	processed map[[2]string]bool
	nextID    uint
	conflicts int
	saveErr   error
	saveCalls int
}

func newMemoryRepo() *memoryInventoryRepo {
	return &memoryInventoryRepo{
		records:   map[string]models.InventoryRecord{},
		processed: map[[2]string]bool{},
	}
}

func (r *memoryInventoryRepo) Create(_ context.Context, rec *models.InventoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ProductID]; ok {
		return models.ErrDuplicateProduct
	}
	r.records[rec.ProductID] = *rec
	return nil
}

func (r *memoryInventoryRepo) GetByProductID(_ context.Context, productID string) (*models.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[productID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &rec, nil
}

func (r *memoryInventoryRepo) List(_ context.Context) ([]models.InventoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InventoryRecord
	for _, rec := range r.records {
		if rec.IsActive {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *memoryInventoryRepo) ListLowStock(ctx context.Context) ([]models.InventoryRecord, error) {
	all, _ := r.List(ctx)
	var out []models.InventoryRecord
	for _, rec := range all {
		if rec.NeedsReorder() {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryInventoryRepo) SaveMutation(_ context.Context, rec *models.InventoryRecord, expected int64, mv *models.Movement, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.conflicts > 0 {
		r.conflicts--
		return models.ErrVersionConflict
	}
	current, ok := r.records[rec.ProductID]
	if !ok || current.Version != expected {
		return models.ErrVersionConflict
	}
	key := [2]string{eventID, rec.ProductID}
	if eventID != "" && r.processed[key] {
		return models.ErrEventAlreadyProcessed
	}
	r.records[rec.ProductID] = *rec
	if mv != nil {
		r.nextID++
		m := *mv
		m.ID = r.nextID
		r.movements = append(r.movements, m)
	}
	if eventID != "" {
		r.processed[key] = true
	}
	return nil
}

func (r *memoryInventoryRepo) EventProcessed(_ context.Context, eventID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.processed[[2]string{eventID, productID}], nil
}

func (r *memoryInventoryRepo) Movements(_ context.Context, productID string, limit int) ([]models.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memoryInventoryRepo) movementTypes(productID string) []models.MovementType {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MovementType
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m.Type)
		}
	}
	return out
}
