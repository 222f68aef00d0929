package posgrest

import (
	"context"

	"gorm.io/gorm"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

// InventoryRepository stores ledger records, their movements and the
// processed-event markers used to deduplicate consumed events.
type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Migrate creates or updates the inventory tables.
func (r *InventoryRepository) Migrate() error {
	return r.db.AutoMigrate(&models.InventoryRecord{}, &models.Movement{}, &models.ProcessedEvent{})
}

func (r *InventoryRepository) Create(ctx context.Context, record *models.InventoryRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if isDuplicate(err) {
		return models.ErrDuplicateProduct
	}
	return err
}

func (r *InventoryRepository) GetByProductID(ctx context.Context, productID string) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&record).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("product_id").
		Find(&records).Error
	return records, err
}

func (r *InventoryRepository) ListLowStock(ctx context.Context) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND available_stock <= reorder_level", true).
		Order("available_stock, product_id").
		Find(&records).Error
	return records, err
}

// SaveMutation writes the new counters only if the stored version still
// equals expectedVersion, then appends the movement and the processed-event
// marker. All three commit or none do.
func (r *InventoryRepository) SaveMutation(ctx context.Context, record *models.InventoryRecord, expectedVersion int64, movement *models.Movement, eventID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.InventoryRecord{}).
			Where("product_id = ? AND version = ?", record.ProductID, expectedVersion).
			Updates(map[string]any{
				"current_stock":   record.CurrentStock,
				"reserved_stock":  record.ReservedStock,
				"available_stock": record.AvailableStock,
				"is_active":       record.IsActive,
				"version":         record.Version,
				"updated_at":      record.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrVersionConflict
		}

		if movement != nil {
			if err := tx.Create(movement).Error; err != nil {
				return err
			}
		}

		if eventID != "" {
			marker := &models.ProcessedEvent{
				EventID:     eventID,
				ProductID:   record.ProductID,
				ProcessedAt: record.UpdatedAt,
			}
			if err := tx.Create(marker).Error; err != nil {
				if isDuplicate(err) {
					return models.ErrEventAlreadyProcessed
				}
				return err
			}
		}
		return nil
	})
}

func (r *InventoryRepository) EventProcessed(ctx context.Context, eventID, productID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.ProcessedEvent{}).
		Where("event_id = ? AND product_id = ?", eventID, productID).
		Count(&n).Error
	return n > 0, err
}

// Movements returns history newest first; limit <= 0 returns everything.
func (r *InventoryRepository) Movements(ctx context.Context, productID string, limit int) ([]models.Movement, error) {
	q := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var movements []models.Movement
	err := q.Find(&movements).Error
	return movements, err
}
