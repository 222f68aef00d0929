package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

// repository is a generic GORM-based repository for entities keyed by an
// "id" column.
type repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.first(ctx, "id = ?", id)
}

// GetBy returns the first entity where the given column matches value.
func (r *repository[T]) GetBy(ctx context.Context, column string, value any) (*T, error) {
	return r.first(ctx, column+" = ?", value)
}

func (r *repository[T]) first(ctx context.Context, query string, args ...any) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// Update writes every column of entity, zero values included.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	res := r.db.WithContext(ctx).Model(entity).Where("id = ?", id).Select("*").Omit("created_at").Updates(entity)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// translate maps driver errors onto the domain errors callers match on.
// It relies on gorm.Config.TranslateError being enabled.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	default:
		return err
	}
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
