package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository.
// Stores in this package build on it for the entity types they persist.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// FirstBy retrieves the first entity matching the condition.
func (r *repository[T]) FirstBy(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// CountBy counts the entities matching the condition.
func (r *repository[T]) CountBy(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var (
		entity T
		count  int64
	)
	if err := r.db.WithContext(ctx).Model(&entity).Where(query, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
