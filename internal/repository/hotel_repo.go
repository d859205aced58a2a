package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	tx := r.db.WithContext(ctx).First(&h, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &h, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Save(h).Error
}

// Delete is a no-op when the id does not exist.
func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Hotel{}, id).Error
}

func (r *HotelRepository) ListAll(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	tx := r.db.WithContext(ctx).Find(&out)
	return out, tx.Error
}

func (r *HotelRepository) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Hotel, error) {
	var out []domain.Hotel
	tx := r.db.WithContext(ctx).Where("destination_id = ?", destinationID).Find(&out)
	return out, tx.Error
}
