package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, img *domain.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

// ListByEntity checks the current (entity_type, entity_id) pair and the
// legacy (type, related_entity_id) pair so rows written by either scheme are
// found.
func (r *ImageRepository) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.Image, error) {
	var out []domain.Image
	tx := r.db.WithContext(ctx).
		Where("(entity_type = ? AND entity_id = ?) OR (type = ? AND related_entity_id = ?)",
			entityType, entityID, entityType, entityID).
		Find(&out)
	return out, tx.Error
}
