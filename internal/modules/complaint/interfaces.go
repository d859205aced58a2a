package complaint

import (
	"context"

	"travelbook/internal/domain"
)

type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) error
	GetByID(ctx context.Context, id int64) (*domain.Complaint, error)
	Update(ctx context.Context, c *domain.Complaint) error
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Complaint, error)
	ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
