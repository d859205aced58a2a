package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var d domain.Destination
	tx := r.db.WithContext(ctx).First(&d, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

func (r *DestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// DeleteWithChildren removes the destination and every hotel/restaurant that
// references it. The schema declares no cascade for destinations, so the
// cleanup is explicit and transactional.
func (r *DestinationRepository) DeleteWithChildren(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_id = ?", id).Delete(&domain.Hotel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", id).Delete(&domain.Restaurant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Destination{}, id).Error
	})
}

func (r *DestinationRepository) ListAll(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	tx := r.db.WithContext(ctx).Find(&out)
	return out, tx.Error
}
