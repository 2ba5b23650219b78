package posgrest

import (
	"context"
	"errors"

	"github.com/hudumapay/settlement-service/internal/apperr"
	"gorm.io/gorm"
)

type repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *repository[T]) FirstBy(ctx context.Context, key string, value interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(key, value).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// translate maps gorm's not-found onto the shared taxonomy so callers do not
// import gorm just to test for it.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
