package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type TravelPackageRepository struct {
	db *gorm.DB
}

func NewTravelPackageRepository(db *gorm.DB) *TravelPackageRepository {
	return &TravelPackageRepository{db: db}
}

func (r *TravelPackageRepository) Create(ctx context.Context, p *domain.TravelPackage) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// CreateWithChildren persists the package plus its hotels and restaurants in
// one transaction. Children get the generated package id before insert.
func (r *TravelPackageRepository) CreateWithChildren(ctx context.Context, p *domain.TravelPackage, hotels []domain.Hotel, restaurants []domain.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range hotels {
			hotels[i].TravelPackageID = p.ID
			if err := tx.Create(&hotels[i]).Error; err != nil {
				return err
			}
		}
		for i := range restaurants {
			restaurants[i].TravelPackageID = p.ID
			if err := tx.Create(&restaurants[i]).Error; err != nil {
				return err
			}
		}
		p.Hotels = hotels
		p.Restaurants = restaurants
		return nil
	})
}

func (r *TravelPackageRepository) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	var p domain.TravelPackage
	tx := r.db.WithContext(ctx).
		Preload("Hotels").
		Preload("Restaurants").
		First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *TravelPackageRepository) Update(ctx context.Context, p *domain.TravelPackage) error {
	return r.db.WithContext(ctx).
		Model(&domain.TravelPackage{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
		}).Error
}

// Delete removes the package and its children in one transaction. The schema
// cascade covers postgres; sqlite dev databases rely on the explicit deletes.
func (r *TravelPackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("travel_package_id = ?", id).Delete(&domain.Hotel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("travel_package_id = ?", id).Delete(&domain.Restaurant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.TravelPackage{}, id).Error
	})
}

// ReplaceHotels drops every hotel owned by the package and recreates them
// from the given list. Destructive replace, not a merge.
func (r *TravelPackageRepository) ReplaceHotels(ctx context.Context, packageID int64, hotels []domain.Hotel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("travel_package_id = ?", packageID).Delete(&domain.Hotel{}).Error; err != nil {
			return err
		}
		for i := range hotels {
			hotels[i].TravelPackageID = packageID
			if err := tx.Create(&hotels[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TravelPackageRepository) ReplaceRestaurants(ctx context.Context, packageID int64, restaurants []domain.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("travel_package_id = ?", packageID).Delete(&domain.Restaurant{}).Error; err != nil {
			return err
		}
		for i := range restaurants {
			restaurants[i].TravelPackageID = packageID
			if err := tx.Create(&restaurants[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListPublic returns non-personal packages only; virtual packages synthesized
// by destination bookings never show up here.
func (r *TravelPackageRepository) ListPublic(ctx context.Context) ([]domain.TravelPackage, error) {
	var out []domain.TravelPackage
	tx := r.db.WithContext(ctx).
		Where("is_personal_booking = ?", false).
		Find(&out)
	return out, tx.Error
}

func (r *TravelPackageRepository) ListByOwnerUsername(ctx context.Context, username string) ([]domain.TravelPackage, error) {
	var out []domain.TravelPackage
	tx := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = travel_packages.user_id").
		Where("users.username = ?", username).
		Find(&out)
	return out, tx.Error
}

// SearchByName is a plain substring match; no relevance ranking.
func (r *TravelPackageRepository) SearchByName(ctx context.Context, q string) ([]domain.TravelPackage, error) {
	var out []domain.TravelPackage
	tx := r.db.WithContext(ctx).
		Where("is_personal_booking = ?", false).
		Where("LOWER(name) LIKE ?", "%"+q+"%").
		Find(&out)
	return out, tx.Error
}
