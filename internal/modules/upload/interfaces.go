package upload

import (
	"context"

	"travelbook/internal/domain"
)

type ImageRepository interface {
	Create(ctx context.Context, img *domain.Image) error
	ListByEntity(ctx context.Context, entityType string, entityID int64) ([]domain.Image, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
