package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(ctx context.Context, e *domain.Restaurant) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var e domain.Restaurant
	tx := r.db.WithContext(ctx).First(&e, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, e *domain.Restaurant) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Restaurant{}, id).Error
}

func (r *RestaurantRepository) ListAll(ctx context.Context) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	tx := r.db.WithContext(ctx).Find(&out)
	return out, tx.Error
}

func (r *RestaurantRepository) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	tx := r.db.WithContext(ctx).Where("destination_id = ?", destinationID).Find(&out)
	return out, tx.Error
}
