package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	var c domain.Complaint
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	var out []domain.Complaint
	tx := r.db.WithContext(ctx).Find(&out)
	return out, tx.Error
}

func (r *ComplaintRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Complaint, error) {
	var out []domain.Complaint
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&out)
	return out, tx.Error
}

func (r *ComplaintRepository) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error) {
	var out []domain.Complaint
	tx := r.db.WithContext(ctx).Where("status = ?", string(status)).Find(&out)
	return out, tx.Error
}
