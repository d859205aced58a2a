package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// CreateWithPackage persists a virtual package and the booking referencing it
// in one transaction, so a failed booking never leaves an orphaned package.
func (r *BookingRepository) CreateWithPackage(ctx context.Context, p *domain.TravelPackage, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		b.TravelPackageID = p.ID
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("TravelPackage").
		First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// Delete is idempotent: deleting a missing id is a no-op, not an error.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}

func (r *BookingRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("TravelPackage").
		Where("user_id = ?", userID).
		Find(&out)
	return out, tx.Error
}
