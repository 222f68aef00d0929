package posgrest

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

type UserRepository struct {
	*repository[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{New[models.User](db)}
}

// Create maps a unique-email violation to models.ErrUserExists, covering
// the race between the service's lookup and the insert.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if isDuplicate(err) {
		return models.ErrUserExists
	}
	return translate(err)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.GetBy(ctx, "email", strings.ToLower(email))
}
